package procgen

import (
	"testing"

	"github.com/phanxgames/autoterrain/pkg/wang"
)

// buildZoneTestWangSet returns a small wangset whose colors 1 and 5 are
// one color-graph hop apart, for exercising smoothing and sprinkling.
func buildZoneTestWangSet(t *testing.T) *wang.WangSet {
	t.Helper()
	s := wang.NewWangSet("terrain", wang.TypeMixed)
	for _, id := range []int{1, 5} {
		if err := s.AddColor(wang.Color{ID: id, Probability: 1}); err != nil {
			t.Fatalf("AddColor(%d): %v", id, err)
		}
	}
	if err := s.AddTileMapping(0, 0, wang.WangId{1, 1, 1, 1, 5, 5, 5, 5}); err != nil {
		t.Fatalf("AddTileMapping: %v", err)
	}
	wang.BuildDistanceMatrices(s)
	return s
}

func TestGenerateNoiseDeterministic(t *testing.T) {
	params := FractalParams{Octaves: 3, Persistence: 0.5, Lacunarity: 2, Scale: 10}
	bands := []NoiseBand{{Threshold: 0.2, Color: 2}, {Threshold: -1, Color: 1}}

	a := GenerateNoise(42, 16, 16, params, bands)
	b := GenerateNoise(42, 16, 16, params, bands)
	for i := range a.Colors {
		if a.Colors[i] != b.Colors[i] {
			t.Fatalf("GenerateNoise not deterministic at index %d", i)
		}
	}
	for _, c := range a.Colors {
		if c != 1 && c != 2 {
			t.Fatalf("unexpected color %d outside band set", c)
		}
	}
}

func TestGenerateVoronoiStaysWithinSeedPalette(t *testing.T) {
	colors := []int{1, 2, 3}
	g := GenerateVoronoi(7, 32, 32, 6, colors)
	seen := make(map[int]bool)
	for _, c := range g.Colors {
		seen[c] = true
	}
	if len(seen) == 0 {
		t.Fatalf("expected voronoi grid to be colored")
	}
	for c := range seen {
		found := false
		for _, allowed := range colors {
			if c == allowed {
				found = true
			}
		}
		if !found {
			t.Fatalf("voronoi produced color %d outside the seed palette", c)
		}
	}
}

func TestGenerateZonesFourQuadrants(t *testing.T) {
	g := GenerateZones(1, 20, 20, ZoneParams{
		QuadrantColors: [4]int{1, 2, 3, 4},
	})
	if g.At(0, 0) == 0 || g.At(19, 19) == 0 {
		t.Fatalf("expected corners to be colored")
	}
}

func TestGenerateZonesCenterOverride(t *testing.T) {
	g := GenerateZones(1, 20, 20, ZoneParams{
		QuadrantColors: [4]int{1, 2, 3, 4},
		CenterColor:    9,
	})
	if g.At(10, 10) != 9 {
		t.Fatalf("At(center) = %d, want center color 9", g.At(10, 10))
	}
}

func TestSmoothBordersKeepsDistanceOneNeighbor(t *testing.T) {
	set := buildZoneTestWangSet(t)
	g := NewGrid(10, 10)
	for i := range g.Colors {
		g.Colors[i] = 1
	}
	g.Set(5, 5, 5) // distance-1 from 1, satisfies the precondition already

	SmoothBorders(g, set, 10)
	if g.At(5, 5) != 5 {
		t.Fatalf("expected a reachable lone cell to be left alone, got %d", g.At(5, 5))
	}
	for _, off := range neighborOffsets8 {
		if c := g.At(5+off[0], 5+off[1]); set.ColorDistance(1, c) > 1 && set.ColorDistance(5, c) > 1 {
			t.Fatalf("neighbor at offset %v ended up unreachable from both colors: %d", off, c)
		}
	}
}

func TestSprinkleVarietyRespectsZeroAmount(t *testing.T) {
	set := buildZoneTestWangSet(t)
	g := NewGrid(10, 10)
	for i := range g.Colors {
		g.Colors[i] = 1
	}
	SprinkleVariety(3, g, set, 0)
	for _, c := range g.Colors {
		if c != 1 {
			t.Fatalf("zero-amount sprinkle changed a cell to %d", c)
		}
	}
}

func TestSprinkleVarietyOnlyPicksReachableColors(t *testing.T) {
	set := buildZoneTestWangSet(t)
	g := NewGrid(10, 10)
	for i := range g.Colors {
		g.Colors[i] = 1
	}
	SprinkleVariety(3, g, set, 1)
	for _, c := range g.Colors {
		if c != 1 && c != 5 {
			t.Fatalf("sprinkle produced color %d outside the reachable set", c)
		}
	}
}
