package schema

import "github.com/phanxgames/autoterrain/pkg/wang"

func setTypeFromString(s string) wang.SetType {
	switch s {
	case "edge":
		return wang.TypeEdge
	case "mixed":
		return wang.TypeMixed
	default:
		return wang.TypeCorner
	}
}

// BuildWangSet finds the named wangset entry in meta, constructs a live
// wang.WangSet from it, and generates its variant table and color
// distance matrices using meta.Transformations.
func BuildWangSet(meta *ProjectMetadata, name string) (*wang.WangSet, error) {
	var entry *WangSetEntry
	for i := range meta.WangSets {
		if meta.WangSets[i].Name == name {
			entry = &meta.WangSets[i]
			break
		}
	}
	if entry == nil {
		return nil, newReferentialError("wangset", "unknown wangset %q", name)
	}

	set := wang.NewWangSet(entry.Name, setTypeFromString(entry.Type))
	for _, c := range entry.Colors {
		err := set.AddColor(wang.Color{
			ID:          c.ID,
			Name:        c.Name,
			Swatch:      c.Swatch,
			Probability: c.Probability,
			Tile:        wang.TileRef{TilesetIndex: c.TilesetIndex, TileID: c.TileID},
			HasTile:     c.HasTile,
		})
		if err != nil {
			return nil, newSchemaError("wangset", "%w", err)
		}
	}
	for _, wt := range entry.WangTiles {
		if err := set.AddTileMapping(wt.TilesetIndex, wt.TileID, wang.WangId(wt.WangID)); err != nil {
			return nil, newSchemaError("wangset", "%w", err)
		}
	}

	cfg := wang.TransformationConfig{
		AllowRotate:         meta.Transformations.AllowRotate,
		AllowFlipH:          meta.Transformations.AllowFlipH,
		AllowFlipV:          meta.Transformations.AllowFlipV,
		PreferUntransformed: meta.Transformations.PreferUntransformed,
	}
	set.SetVariants(wang.GenerateVariants(set, cfg))
	wang.BuildDistanceMatrices(set)

	return set, nil
}
