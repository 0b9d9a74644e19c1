// Package prefab implements reusable multi-layer tile stamps and their
// placements on a map.
package prefab

// NumLayers is the fixed number of tile layers a Prefab carries.
const NumLayers = 5

// Tile is one occupied cell within a prefab, relative to its own origin.
type Tile struct {
	X, Y         int
	TileID       int
	TilesetIndex int
}

// Prefab is a named, reusable stamp of up to NumLayers tile layers, with
// an anchor point used to translate the stamp onto a target map.
type Prefab struct {
	Name     string
	Layers   [NumLayers][]Tile
	AnchorX  int
	AnchorY  int
}

// PlacedPrefab records where a named prefab has been stamped onto a map.
// Layer is the destination layer its own layer 0 lands on; its other
// layers land on Layer+1, Layer+2, and so on.
type PlacedPrefab struct {
	PrefabName string
	X, Y       int
	Layer      int
}
