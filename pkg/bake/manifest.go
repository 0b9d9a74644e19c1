package bake

// Manifest is the JSON index emitted alongside the baked binary layers
// and atlas pages, enough for a runtime to load everything back without
// re-deriving layout decisions.
type Manifest struct {
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	TileSize   int      `json:"tileSize"`
	LayerFiles []string `json:"layerFiles"`
	AtlasPages []string `json:"atlasPages"`
	TileCount  int      `json:"tileCount"`
}

// BuildManifest assembles a Manifest from a bake run's layout and the
// file names chosen for its outputs.
func BuildManifest(width, height int, layout AtlasLayout, layerFiles, atlasPages []string, tileCount int) Manifest {
	return Manifest{
		Width:      width,
		Height:     height,
		TileSize:   layout.TileSize,
		LayerFiles: layerFiles,
		AtlasPages: atlasPages,
		TileCount:  tileCount,
	}
}
