package schema

import (
	"encoding/json"

	"github.com/phanxgames/autoterrain/pkg/prefab"
)

const savedPrefabVersion = 2

// TileEntry is one occupied tile within a saved prefab layer.
type TileEntry struct {
	X            int `json:"x"`
	Y            int `json:"y"`
	TileID       int `json:"tileId"`
	TilesetIndex int `json:"tilesetIndex"`
}

// SavedPrefab is the on-disk format for a reusable multi-layer stamp.
type SavedPrefab struct {
	Version int                           `json:"version"`
	Name    string                        `json:"name"`
	Layers  [prefab.NumLayers][]TileEntry `json:"layers"`
	AnchorX int                           `json:"anchorX"`
	AnchorY int                           `json:"anchorY"`
}

// ParsePrefab decodes and structurally validates a saved prefab document.
func ParsePrefab(data []byte) (*SavedPrefab, error) {
	var p SavedPrefab
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &IOError{Path: "<prefab>", Err: err}
	}
	if p.Version != savedPrefabVersion {
		return nil, newSchemaError("prefab", "unsupported version %d (want %d)", p.Version, savedPrefabVersion)
	}
	if p.Name == "" {
		return nil, newSchemaError("prefab", "prefab has an empty name")
	}
	return &p, nil
}

// ToPrefab converts a parsed document into a live prefab.Prefab.
func ToPrefab(p *SavedPrefab) *prefab.Prefab {
	out := &prefab.Prefab{Name: p.Name, AnchorX: p.AnchorX, AnchorY: p.AnchorY}
	for i, layer := range p.Layers {
		tiles := make([]prefab.Tile, len(layer))
		for j, t := range layer {
			tiles[j] = prefab.Tile{X: t.X, Y: t.Y, TileID: t.TileID, TilesetIndex: t.TilesetIndex}
		}
		out.Layers[i] = tiles
	}
	return out
}
