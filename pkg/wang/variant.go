package wang

// TransformationConfig controls which symmetry operations the variant
// generator is allowed to apply to base tiles.
type TransformationConfig struct {
	AllowRotate         bool
	AllowFlipH          bool
	AllowFlipV          bool
	PreferUntransformed bool
}

// Variant is a concrete renderable: a base tile under a specific
// orientation, plus the WangId pattern that orientation produces.
type Variant struct {
	BaseTileID   int
	TilesetIndex int
	FlipH        bool
	FlipV        bool
	FlipD        bool
	WangID       WangId
}

// triple is the (flipH, flipV, flipD) rendering primitive used to realize
// any of the 8 elements of the dihedral group D4 on a WangId.
type triple [3]bool

// all8Triples enumerates the 8 possible (flipH, flipV, flipD) combinations,
// i.e. the full D4 symmetry group expressed in the rendering primitive.
var all8Triples = [8]triple{
	{false, false, false}, // identity
	{true, false, false},  // flipH
	{false, true, false},  // flipV
	{true, true, false},   // rotate180 (flipH ∘ flipV)
	{false, false, true},  // flipD (transpose)
	{true, false, true},   // rotate90 (transpose, then flipH)
	{false, true, true},   // rotate270 (transpose, then flipV)
	{true, true, true},    // transpose + flipH + flipV
}

var rotate90Triple = triple{true, false, true}
var rotate180Triple = triple{true, true, false}
var rotate270Triple = triple{false, true, true}

// applyTriple realizes a (flipH, flipV, flipD) triple against a WangId,
// following the rendering convention in spec §4.3: flipD transposes
// first, then flipH and flipV mirror the result.
func applyTriple(w WangId, h, v, d bool) WangId {
	r := w
	if d {
		r = r.Transpose()
	}
	if h {
		r = r.FlipH()
	}
	if v {
		r = r.FlipV()
	}
	return r
}

// probeWangID has 8 distinct slot values and is used only to discover
// which canonical triple two composed triples are equivalent to.
var probeWangID = WangId{1, 2, 3, 4, 5, 6, 7, 8}

// composeTriple returns the triple equivalent to applying b, then a.
func composeTriple(a, b triple) triple {
	mid := applyTriple(probeWangID, b[0], b[1], b[2])
	final := applyTriple(mid, a[0], a[1], a[2])
	for _, t := range all8Triples {
		if applyTriple(probeWangID, t[0], t[1], t[2]) == final {
			return t
		}
	}
	return a
}

// extendGroup grows a symmetry group by composing op with every member
// already present, keeping only newly discovered triples.
func extendGroup(group []triple, op triple) []triple {
	seen := make(map[triple]bool, len(group))
	for _, g := range group {
		seen[g] = true
	}
	result := append([]triple{}, group...)
	for _, g := range group {
		c := composeTriple(op, g)
		if !seen[c] {
			seen[c] = true
			result = append(result, c)
		}
	}
	return result
}

// buildSymmetryGroup implements the candidate symmetry group construction
// of spec §4.3 step 1-2.
func buildSymmetryGroup(cfg TransformationConfig) []triple {
	group := []triple{{false, false, false}}
	if cfg.AllowFlipH {
		group = extendGroup(group, triple{true, false, false})
	}
	if cfg.AllowFlipV {
		group = extendGroup(group, triple{false, true, false})
	}
	if cfg.AllowRotate {
		for _, r := range []triple{rotate90Triple, rotate180Triple, rotate270Triple} {
			group = extendGroup(group, r)
		}
	}
	return group
}

func popcount3(t triple) int {
	n := 0
	if t[0] {
		n++
	}
	if t[1] {
		n++
	}
	if t[2] {
		n++
	}
	return n
}

// GenerateVariants expands every base tile mapping in set under the
// symmetry group described by cfg, deduplicating by resulting WangId.
// When multiple ops yield the same pattern, the one with the fewest true
// flip bits is kept; cfg.PreferUntransformed makes the identity transform
// always win ties.
func GenerateVariants(set *WangSet, cfg TransformationConfig) []Variant {
	group := buildSymmetryGroup(cfg)

	type slot struct {
		variant   Variant
		flipCount int
		identity  bool
	}

	best := make(map[WangId]slot)
	var order []WangId

	for _, tm := range set.TileMappings() {
		for _, op := range group {
			pattern := applyTriple(tm.WangID, op[0], op[1], op[2])
			cand := slot{
				variant: Variant{
					BaseTileID:   tm.TileID,
					TilesetIndex: tm.TilesetIndex,
					FlipH:        op[0],
					FlipV:        op[1],
					FlipD:        op[2],
					WangID:       pattern,
				},
				flipCount: popcount3(op),
				identity:  op == (triple{false, false, false}),
			}

			existing, ok := best[pattern]
			if !ok {
				best[pattern] = cand
				order = append(order, pattern)
				continue
			}
			if cfg.PreferUntransformed && existing.identity {
				continue
			}
			if cfg.PreferUntransformed && cand.identity {
				best[pattern] = cand
				continue
			}
			if cand.flipCount < existing.flipCount {
				best[pattern] = cand
			}
		}
	}

	out := make([]Variant, 0, len(order))
	for _, pattern := range order {
		out = append(out, best[pattern].variant)
	}
	return out
}
