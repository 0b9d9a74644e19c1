package bake

import (
	"image"
	"image/color"
	"testing"

	"github.com/phanxgames/autoterrain/pkg/autotile"
	"github.com/phanxgames/autoterrain/pkg/prefab"
	"github.com/phanxgames/autoterrain/pkg/wang"
)

func buildBakeWangSet(t *testing.T) *wang.WangSet {
	t.Helper()
	s := wang.NewWangSet("terrain", wang.TypeMixed)
	if err := s.AddColor(wang.Color{ID: 1, Probability: 1}); err != nil {
		t.Fatalf("AddColor: %v", err)
	}
	if err := s.AddTileMapping(0, 0, wang.WangId{1, 1, 1, 1, 1, 1, 1, 1}); err != nil {
		t.Fatalf("AddTileMapping: %v", err)
	}
	s.SetVariants(wang.GenerateVariants(s, wang.TransformationConfig{}))
	wang.BuildDistanceMatrices(s)
	return s
}

func solidImage(size int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestBakeMapLayersProducesAtlasAndLayerData(t *testing.T) {
	set := buildBakeWangSet(t)
	m := autotile.NewAutotileMap(2, 2, set)
	if _, err := autotile.FloodFillTerrain(m, 0, 0, 1); err != nil {
		t.Fatalf("FloodFillTerrain: %v", err)
	}

	images := map[int]image.Image{0: solidImage(16, color.RGBA{R: 255, A: 255})}
	columns := map[int]int{0: 1}

	result, err := BakeMapLayers(
		nil,
		[]LayerSource{{Layer: 0, Map: m}},
		map[string]*prefab.Prefab{},
		nil,
		prefab.NumLayers,
		images,
		columns,
		16, 256,
	)
	if err != nil {
		t.Fatalf("BakeMapLayers: %v", err)
	}
	if len(result.AtlasPages) == 0 {
		t.Fatalf("expected at least one atlas page")
	}
	flat, ok := result.LayerData[0]
	if !ok {
		t.Fatalf("expected layer 0 in result")
	}
	for _, id := range flat {
		if id == 0 {
			t.Fatalf("expected every cell of a fully flood-filled map to have a baked tile, got 0")
		}
	}
}

func TestBakeMapLayersSkipsUnknownPrefab(t *testing.T) {
	set := buildBakeWangSet(t)
	m := autotile.NewAutotileMap(2, 2, set)
	if _, err := autotile.FloodFillTerrain(m, 0, 0, 1); err != nil {
		t.Fatalf("FloodFillTerrain: %v", err)
	}

	images := map[int]image.Image{0: solidImage(16, color.RGBA{G: 255, A: 255})}
	columns := map[int]int{0: 1}

	_, err := BakeMapLayers(
		nil,
		[]LayerSource{{Layer: 0, Map: m}},
		map[string]*prefab.Prefab{}, // "tree" is not registered
		[]prefab.PlacedPrefab{{PrefabName: "tree", X: 0, Y: 0, Layer: 0}},
		prefab.NumLayers,
		images,
		columns,
		16, 256,
	)
	if err != nil {
		t.Fatalf("expected an unknown prefab placement to be skipped, not fatal: %v", err)
	}
}
