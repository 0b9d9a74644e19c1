package wang

// matchScore is the lexicographic comparison key used by FindBestMatch:
// fewer hard mismatches always wins, soft penalty breaks ties between
// equally-hard candidates, and transform penalty prefers untransformed
// tiles over flipped ones when everything else is equal.
type matchScore struct {
	hardMismatches  int
	softPenalty     int
	transformPenalty int
}

func (a matchScore) less(b matchScore) bool {
	if a.hardMismatches != b.hardMismatches {
		return a.hardMismatches < b.hardMismatches
	}
	if a.softPenalty != b.softPenalty {
		return a.softPenalty < b.softPenalty
	}
	return a.transformPenalty < b.transformPenalty
}

func (a matchScore) equals(b matchScore) bool {
	return a.hardMismatches == b.hardMismatches &&
		a.softPenalty == b.softPenalty &&
		a.transformPenalty == b.transformPenalty
}

// scoreVariant scores a candidate variant against a desired (possibly
// partial) WangId. Only slots active for the set's type are considered.
// A hard mismatch is an active slot where both sides are filled with
// different colors outside of graph-distance 1 of each other; within
// distance 1 the mismatch is scored as a soft penalty instead, allowing
// the resolver to settle for an adjacent color when an exact match isn't
// available.
func scoreVariant(set *WangSet, desired WangId, v Variant) matchScore {
	active := set.ActiveSlots()
	var score matchScore
	for i := 0; i < 8; i++ {
		if !active[i] {
			continue
		}
		d := desired[i]
		c := v.WangID[i]
		if d == 0 || c == 0 || d == c {
			continue
		}
		dist := set.ColorDistance(d, c)
		switch {
		case dist == 1:
			score.softPenalty++
		case dist < 0:
			score.hardMismatches++
		default:
			score.hardMismatches++
			score.softPenalty += dist
		}
	}
	score.transformPenalty = popcount3(triple{v.FlipH, v.FlipV, v.FlipD})
	return score
}

// splitmix64 is a fast, well-distributed hash used only to derive a
// deterministic tie-break seed from a cell's coordinates; it is never
// used as a general-purpose PRNG.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// FindBestMatch scores every variant in set against the desired pattern
// and returns the lowest-scoring one. When multiple variants tie exactly,
// the choice is resolved deterministically from (x, y) and each tied
// candidate's aggregate color probability, so repeated calls on the same
// cell always return the same variant.
func FindBestMatch(set *WangSet, desired WangId, x, y int) (Variant, bool) {
	variants := set.AllVariants()
	if len(variants) == 0 {
		return Variant{}, false
	}

	best := scoreVariant(set, desired, variants[0])
	tied := []Variant{variants[0]}

	for _, v := range variants[1:] {
		s := scoreVariant(set, desired, v)
		switch {
		case s.less(best):
			best = s
			tied = tied[:0]
			tied = append(tied, v)
		case s.equals(best):
			tied = append(tied, v)
		}
	}

	if len(tied) == 1 {
		return tied[0], true
	}

	weights := make([]float64, len(tied))
	total := 0.0
	for i, v := range tied {
		w := 1.0
		for _, slot := range v.WangID {
			if slot == 0 {
				continue
			}
			if c, ok := set.GetColor(slot); ok && c.Probability > 0 {
				w *= c.Probability
			}
		}
		weights[i] = w
		total += w
	}

	seed := splitmix64(uint64(uint32(x))<<32 | uint64(uint32(y)))
	r := float64(seed%1_000_000) / 1_000_000.0 * total

	acc := 0.0
	for i, w := range weights {
		acc += w
		if r <= acc {
			return tied[i], true
		}
	}
	return tied[len(tied)-1], true
}
