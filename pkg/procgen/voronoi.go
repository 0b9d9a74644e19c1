package procgen

import "math"

// VoronoiSeed is one cell of a voronoi diagram: a location and the color
// every grid cell nearest to it takes on.
type VoronoiSeed struct {
	X, Y  float64
	Color int
}

// GenerateVoronoi scatters numSeeds random seed points (each assigned a
// color chosen uniformly from colors) and colors every grid cell by its
// nearest seed in Euclidean distance.
func GenerateVoronoi(seed uint64, width, height, numSeeds int, colors []int) *Grid {
	rng := NewRng(seed)
	if len(colors) == 0 || numSeeds <= 0 {
		return NewGrid(width, height)
	}

	seeds := make([]VoronoiSeed, numSeeds)
	for i := range seeds {
		seeds[i] = VoronoiSeed{
			X:     rng.Float64() * float64(width),
			Y:     rng.Float64() * float64(height),
			Color: colors[rng.Intn(len(colors))],
		}
	}

	g := NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			best := -1
			bestDist := math.MaxFloat64
			for i, s := range seeds {
				dx := float64(x) - s.X
				dy := float64(y) - s.Y
				d := dx*dx + dy*dy
				if d < bestDist {
					bestDist = d
					best = i
				}
			}
			g.Set(x, y, seeds[best].Color)
		}
	}
	return g
}
