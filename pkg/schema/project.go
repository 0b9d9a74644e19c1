package schema

import "encoding/json"

const projectVersion = 2

// TilesetEntry describes one tileset image referenced by index from
// colors, wang tiles, and prefab tiles.
type TilesetEntry struct {
	Image      string `json:"image"`
	TileWidth  int    `json:"tileWidth"`
	TileHeight int    `json:"tileHeight"`
	Columns    int    `json:"columns"`
	TileCount  int    `json:"tileCount"`
}

// ColorEntry is one wang color as stored on disk.
type ColorEntry struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Swatch       string  `json:"swatch,omitempty"`
	Probability  float64 `json:"probability"`
	TilesetIndex int     `json:"tilesetIndex,omitempty"`
	TileID       int     `json:"tileId,omitempty"`
	HasTile      bool    `json:"hasTile,omitempty"`
}

// WangTileEntry is one base tile-to-pattern mapping as stored on disk.
type WangTileEntry struct {
	TilesetIndex int    `json:"tilesetIndex"`
	TileID       int    `json:"tileId"`
	WangID       [8]int `json:"wangId"`
}

// WangSetEntry is one named wang set: its type, colors, and base tile
// mappings. Type is one of "corner", "edge", "mixed".
type WangSetEntry struct {
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Colors    []ColorEntry    `json:"colors"`
	WangTiles []WangTileEntry `json:"wangTiles"`
}

// TransformationConfig mirrors wang.TransformationConfig for on-disk
// storage, kept as a separate type so the schema package doesn't need to
// import wang just to declare its project file shape.
type TransformationConfig struct {
	AllowRotate         bool `json:"allowRotate"`
	AllowFlipH          bool `json:"allowFlipH"`
	AllowFlipV          bool `json:"allowFlipV"`
	PreferUntransformed bool `json:"preferUntransformed"`
}

// ProjectMetadata is the root document describing a project's tilesets
// and wang sets.
type ProjectMetadata struct {
	Version         int                  `json:"version"`
	Tilesets        []TilesetEntry       `json:"tilesets"`
	Transformations TransformationConfig `json:"transformations"`
	WangSets        []WangSetEntry       `json:"wangSets"`
}

// ParseProjectMetadata decodes and structurally validates project
// metadata JSON, including its tileset-index and color-id references
// (reported as *ReferentialError). It does not construct a wang.WangSet;
// call BuildWangSet for that.
func ParseProjectMetadata(data []byte) (*ProjectMetadata, error) {
	var meta ProjectMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, &IOError{Path: "<project metadata>", Err: err}
	}
	if err := validateProjectMetadata(&meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func validateProjectMetadata(meta *ProjectMetadata) error {
	if meta.Version != projectVersion {
		return newSchemaError("project metadata", "unsupported version %d (want %d)", meta.Version, projectVersion)
	}
	if len(meta.Tilesets) == 0 {
		return newSchemaError("project metadata", "at least one tileset is required")
	}
	names := make(map[string]bool)
	for _, ws := range meta.WangSets {
		if ws.Name == "" {
			return newSchemaError("wangset", "wangset entry has an empty name")
		}
		if names[ws.Name] {
			return newSchemaError("wangset", "duplicate wangset name %q", ws.Name)
		}
		names[ws.Name] = true

		switch ws.Type {
		case "corner", "edge", "mixed":
		default:
			return newSchemaError("wangset", "wangset %q has unknown type %q", ws.Name, ws.Type)
		}

		colorIDs := make(map[int]bool)
		for _, c := range ws.Colors {
			if c.ID <= 0 {
				return newSchemaError("wangset", "wangset %q: color ids must be positive, got %d", ws.Name, c.ID)
			}
			colorIDs[c.ID] = true
			if c.TilesetIndex < 0 || c.TilesetIndex >= len(meta.Tilesets) {
				return newReferentialError("wangset", "wangset %q color %d references unknown tileset index %d", ws.Name, c.ID, c.TilesetIndex)
			}
		}
		for _, wt := range ws.WangTiles {
			if wt.TilesetIndex < 0 || wt.TilesetIndex >= len(meta.Tilesets) {
				return newReferentialError("wangset", "wangset %q: wang tile (%d,%d) references unknown tileset index",
					ws.Name, wt.TilesetIndex, wt.TileID)
			}
			for _, v := range wt.WangID {
				if v != 0 && !colorIDs[v] {
					return newReferentialError("wangset", "wangset %q: wang tile (%d,%d) references unregistered color %d",
						ws.Name, wt.TilesetIndex, wt.TileID, v)
				}
			}
		}
	}
	return nil
}
