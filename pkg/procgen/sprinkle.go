package procgen

import (
	"math"

	"github.com/phanxgames/autoterrain/pkg/wang"
)

// normalize01 maps a roughly [-1, 1] noise sample to [0, 1).
func normalize01(v float64) float64 {
	n := (v + 1) / 2
	if n < 0 {
		return 0
	}
	if n >= 1 {
		return 0.999999999
	}
	return n
}

// SprinkleVariety walks the grid row-major and, for every non-empty
// cell, samples noise at (x*0.08, y*0.08) normalized to [0, 1); if the
// sample is at least 1-amount, a second noise sample picks one of the
// cell's distance-1 alternative colors (derived from set's color
// graph), and the substitution is only applied if the pick stays
// distance <= 1 from every non-empty 8-neighbor.
func SprinkleVariety(seed uint64, g *Grid, set *wang.WangSet, amount float64) {
	if amount <= 0 {
		return
	}
	noise := NewSimplexNoise2D(NewRng(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			self := g.At(x, y)
			if self == 0 {
				continue
			}

			sample := normalize01(noise.Eval2D(float64(x)*0.08, float64(y)*0.08))
			if sample < 1-amount {
				continue
			}

			var candidates []int
			for _, c := range set.Colors() {
				if c.ID != self && set.ColorDistance(self, c.ID) == 1 {
					candidates = append(candidates, c.ID)
				}
			}
			if len(candidates) == 0 {
				continue
			}

			second := noise.Eval2D(float64(x)*0.08+1000, float64(y)*0.08+1000)
			idx := int(math.Abs(second)*1e6) % len(candidates)
			pick := candidates[idx]

			safe := true
			for _, off := range neighborOffsets8 {
				nc := g.At(x+off[0], y+off[1])
				if nc == 0 {
					continue
				}
				if set.ColorDistance(pick, nc) > 1 {
					safe = false
					break
				}
			}
			if safe {
				g.Set(x, y, pick)
			}
		}
	}
}
