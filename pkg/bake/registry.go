package bake

// tileKey is the content-address of one oriented tile: which source
// tile, flipped which way.
type tileKey struct {
	TilesetIndex int
	TileID       int
	FlipH        bool
	FlipV        bool
	FlipD        bool
}

// TileRegistry deduplicates (tilesetIndex, tileId, flipH, flipV, flipD)
// combinations into dense baked ids starting at 1. Baked id 0 always
// means "empty" and is never assigned to a real tile.
type TileRegistry struct {
	ids   map[tileKey]int
	order []tileKey
}

// NewTileRegistry returns an empty registry.
func NewTileRegistry() *TileRegistry {
	return &TileRegistry{ids: make(map[tileKey]int)}
}

// Register returns the baked id for the given oriented tile, assigning a
// new one the first time a combination is seen.
func (r *TileRegistry) Register(tilesetIndex, tileID int, flipH, flipV, flipD bool) int {
	key := tileKey{tilesetIndex, tileID, flipH, flipV, flipD}
	if id, ok := r.ids[key]; ok {
		return id
	}
	id := len(r.order) + 1
	r.ids[key] = id
	r.order = append(r.order, key)
	return id
}

// Len returns the number of distinct baked tiles registered so far.
func (r *TileRegistry) Len() int {
	return len(r.order)
}

// Entries returns every registered tile key in baked-id order (index i
// corresponds to baked id i+1).
func (r *TileRegistry) Entries() []tileKey {
	return r.order
}
