package prefab

// StampedTile is one tile a placement resolves to on the destination map,
// already translated into absolute map coordinates and an absolute layer.
type StampedTile struct {
	Layer        int
	X, Y         int
	TileID       int
	TilesetIndex int
}

// Resolve translates every tile in p by the placement's position (offset
// by the prefab's own anchor) and layer, dropping any layer that would
// land outside [0, maxLayer).
func Resolve(p *Prefab, placement PlacedPrefab, maxLayer int) []StampedTile {
	var out []StampedTile
	for i, layer := range p.Layers {
		destLayer := placement.Layer + i
		if destLayer < 0 || destLayer >= maxLayer {
			continue
		}
		for _, t := range layer {
			out = append(out, StampedTile{
				Layer:        destLayer,
				X:            placement.X + (t.X - p.AnchorX),
				Y:            placement.Y + (t.Y - p.AnchorY),
				TileID:       t.TileID,
				TilesetIndex: t.TilesetIndex,
			})
		}
	}
	return out
}
