package procgen

import "sort"

// NoiseBand assigns a color to every noise value at or above Threshold;
// bands are evaluated highest threshold first, so list them in
// descending Threshold order (or call GenerateNoise, which sorts them).
type NoiseBand struct {
	Threshold float64
	Color     int
}

// GenerateNoise fills a grid from fractal simplex noise, mapping each
// cell's noise value to the highest-threshold band it qualifies for. A
// cell below every band's threshold gets the lowest band's color.
func GenerateNoise(seed uint64, width, height int, params FractalParams, bands []NoiseBand) *Grid {
	rng := NewRng(seed)
	noise := NewSimplexNoise2D(rng)

	sorted := append([]NoiseBand{}, bands...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Threshold > sorted[j].Threshold })

	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := noise.Fractal2D(float64(x), float64(y), params)
			color := 0
			if len(sorted) > 0 {
				color = sorted[len(sorted)-1].Color
				for _, b := range sorted {
					if v >= b.Threshold {
						color = b.Color
						break
					}
				}
			}
			g.Set(x, y, color)
		}
	}
	return g
}
