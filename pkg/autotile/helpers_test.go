package autotile

import (
	"testing"

	"github.com/phanxgames/autoterrain/pkg/wang"
)

// buildTestWangSet returns a small mixed-type wangset with two colors and
// three base tiles: pure grass, pure water, and a grass/water transition,
// sufficient to exercise painting and flood fill without a real atlas.
func buildTestWangSet(t *testing.T) *wang.WangSet {
	t.Helper()
	s := wang.NewWangSet("terrain", wang.TypeMixed)
	if err := s.AddColor(wang.Color{ID: 1, Name: "grass", Probability: 1}); err != nil {
		t.Fatalf("AddColor(grass): %v", err)
	}
	if err := s.AddColor(wang.Color{ID: 2, Name: "water", Probability: 1}); err != nil {
		t.Fatalf("AddColor(water): %v", err)
	}

	all := func(c int) wang.WangId {
		return wang.WangId{c, c, c, c, c, c, c, c}
	}
	mappings := []wang.WangId{
		all(1),
		all(2),
		{1, 1, 1, 2, 2, 2, 2, 1}, // transition tile
	}
	for i, m := range mappings {
		if err := s.AddTileMapping(0, i, m); err != nil {
			t.Fatalf("AddTileMapping(%d): %v", i, err)
		}
	}

	s.SetVariants(wang.GenerateVariants(s, wang.TransformationConfig{
		AllowRotate: true, AllowFlipH: true, AllowFlipV: true,
	}))
	wang.BuildDistanceMatrices(s)
	return s
}
