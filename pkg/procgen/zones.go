package procgen

import "math"

// ZoneParams configures the zone-based generator: a center biome and
// four quadrant biomes (NW, NE, SW, SE), split by noise-perturbed
// boundaries so no zone edge is a perfectly straight line.
type ZoneParams struct {
	CenterColor    int
	QuadrantColors [4]int // NW, NE, SW, SE
	BoundaryNoise  float64
	Scale          float64
}

// GenerateZones fills a grid with a center diamond biome surrounded by
// four quadrants. Coordinates are normalized to roughly [-1, 1] around
// the grid's midpoint before any test runs. The center zone is the
// diamond |nx|+|ny| < 0.8, itself perturbed by a simplex sample scaled
// by BoundaryNoise*0.4; outside the center, quadrant membership is
// decided by a perturbed horizontal line and a perturbed vertical line
// through the midpoint, each offset by its own simplex sample scaled by
// BoundaryNoise.
func GenerateZones(seed uint64, width, height int, p ZoneParams) *Grid {
	rng := NewRng(seed)
	noise := NewSimplexNoise2D(rng)

	scale := p.Scale
	if scale <= 0 {
		scale = 3
	}
	halfW := float64(width) / 2
	halfH := float64(height) / 2

	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := (float64(x) + 0.5 - halfW) / halfW
			ny := (float64(y) + 0.5 - halfH) / halfH

			centerNoise := noise.Eval2D(nx*scale, ny*scale)
			if math.Abs(nx)+math.Abs(ny) < 0.8+centerNoise*p.BoundaryNoise*0.4 {
				g.Set(x, y, p.CenterColor)
				continue
			}

			xLine := noise.Eval2D(nx*scale+100, ny*scale+100) * p.BoundaryNoise
			yLine := noise.Eval2D(nx*scale+200, ny*scale+200) * p.BoundaryNoise

			var idx int
			switch {
			case nx < xLine && ny < yLine:
				idx = 0 // NW
			case nx >= xLine && ny < yLine:
				idx = 1 // NE
			case nx < xLine && ny >= yLine:
				idx = 2 // SW
			default:
				idx = 3 // SE
			}
			g.Set(x, y, p.QuadrantColors[idx])
		}
	}
	return g
}
