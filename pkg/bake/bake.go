package bake

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/phanxgames/autoterrain/pkg/autotile"
	"github.com/phanxgames/autoterrain/pkg/prefab"
)

// LayerSource is one resolved autotile layer plus where it sits in the
// final stack.
type LayerSource struct {
	Layer int
	Map   *autotile.AutotileMap
}

// Result is everything a bake run produces, ready for a caller to write
// to disk however it likes.
type Result struct {
	Width, Height int
	Layout        AtlasLayout
	LayerData     map[int][]int // layer index -> row-major baked ids
	AtlasPages    []*image.RGBA
	TileCount     int // distinct baked tiles, not page capacity
	Manifest      Manifest
}

// BakeMapLayers registers every resolved autotile cell and every prefab
// placement's stamped tiles into a single TileRegistry, renders the
// resulting atlas, and returns the baked layer data. Placements naming a
// prefab absent from prefabs are logged and skipped, not treated as a
// fatal error — a missing prop shouldn't block an otherwise valid bake.
func BakeMapLayers(
	logger *slog.Logger,
	layers []LayerSource,
	prefabs map[string]*prefab.Prefab,
	placements []prefab.PlacedPrefab,
	maxLayer int,
	images map[int]image.Image,
	columns map[int]int,
	tileSize, maxAtlasPx int,
) (*Result, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("bake: no layers to bake")
	}
	width, height := layers[0].Map.Width, layers[0].Map.Height

	registry := NewTileRegistry()
	layerData := make(map[int][]int, len(layers))
	for _, ls := range layers {
		if ls.Map.Width != width || ls.Map.Height != height {
			return nil, fmt.Errorf("bake: layer %d has dimensions %dx%d, want %dx%d", ls.Layer, ls.Map.Width, ls.Map.Height, width, height)
		}
		flat := make([]int, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				cell := ls.Map.Cell(x, y)
				if !cell.HasTile {
					continue
				}
				flat[y*width+x] = registry.Register(cell.TilesetIndex, cell.TileID, cell.FlipH, cell.FlipV, cell.FlipD)
			}
		}
		layerData[ls.Layer] = flat
	}

	for _, placement := range placements {
		p, ok := prefabs[placement.PrefabName]
		if !ok {
			if logger != nil {
				logger.Warn("skipping placement of unknown prefab", "prefab", placement.PrefabName, "x", placement.X, "y", placement.Y)
			}
			continue
		}
		for _, st := range prefab.Resolve(p, placement, maxLayer) {
			flat, ok := layerData[st.Layer]
			if !ok {
				if logger != nil {
					logger.Warn("prefab placement targets an unbaked layer, skipping", "prefab", placement.PrefabName, "layer", st.Layer)
				}
				continue
			}
			if st.X < 0 || st.Y < 0 || st.X >= width || st.Y >= height {
				continue
			}
			flat[st.Y*width+st.X] = registry.Register(st.TilesetIndex, st.TileID, false, false, false)
		}
	}

	layout := ComputeAtlasLayout(registry.Len(), tileSize, maxAtlasPx)
	pages, err := RenderAtlas(registry, images, columns, layout)
	if err != nil {
		return nil, err
	}

	return &Result{
		Width:      width,
		Height:     height,
		Layout:     layout,
		LayerData:  layerData,
		AtlasPages: pages,
		TileCount:  registry.Len(),
	}, nil
}
