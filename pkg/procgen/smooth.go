package procgen

import "github.com/phanxgames/autoterrain/pkg/wang"

// neighborOffsets8 are the (dx, dy) offsets of the 8-neighborhood.
var neighborOffsets8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// SmoothBorders repairs a generated grid so every pair of adjacent
// non-empty cells satisfies the wangset's adjacency precondition:
// repeatedly scan the grid and, for every non-empty cell whose neighbor
// is more than one color-graph hop away, replace that neighbor with the
// next-hop color on the path back toward the cell. Stops as soon as a
// pass changes nothing (a fixed point) or maxIterations is reached.
func SmoothBorders(g *Grid, set *wang.WangSet, maxIterations int) {
	for iter := 0; iter < maxIterations; iter++ {
		next := make([]int, len(g.Colors))
		copy(next, g.Colors)
		changed := false

		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				self := g.At(x, y)
				if self == 0 {
					continue
				}
				for _, off := range neighborOffsets8 {
					nx, ny := x+off[0], y+off[1]
					nc := g.At(nx, ny)
					if nc == 0 {
						continue
					}
					if set.ColorDistance(self, nc) <= 1 {
						continue
					}
					step := set.NextHopColor(self, nc)
					if step <= 0 {
						continue
					}
					next[ny*g.Width+nx] = step
					changed = true
				}
			}
		}

		g.Colors = next
		if !changed {
			break
		}
	}
}
