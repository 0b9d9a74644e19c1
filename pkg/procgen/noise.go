package procgen

import "math"

// SimplexNoise2D is a classic 2D simplex noise generator whose gradient
// permutation table is shuffled by a caller-supplied Rng, so the same
// seed always yields the same noise field.
type SimplexNoise2D struct {
	perm    [512]int
	permMod [512]int
}

var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {1, 0}, {-1, 0},
}

// NewSimplexNoise2D builds a noise generator seeded by rng.
func NewSimplexNoise2D(rng *Rng) *SimplexNoise2D {
	base := make([]int, 256)
	for i := range base {
		base[i] = i
	}
	rng.Shuffle(base)

	n := &SimplexNoise2D{}
	for i := 0; i < 512; i++ {
		n.perm[i] = base[i&255]
		n.permMod[i] = n.perm[i] % 8
	}
	return n
}

const (
	f2 = 0.5 * (1.7320508075688772 - 1) // (sqrt(3)-1)/2
	g2 = (3 - 1.7320508075688772) / 6   // (3-sqrt(3))/6
)

func dot2(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

// Eval2D returns a noise value in roughly [-1, 1] at (x, y).
func (n *SimplexNoise2D) Eval2D(x, y float64) float64 {
	s := (x + y) * f2
	i := int(math.Floor(x + s))
	j := int(math.Floor(y + s))

	t := float64(i+j) * g2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + g2
	y1 := y0 - float64(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := i & 255
	jj := j & 255

	gi0 := n.permMod[ii+n.perm[jj]]
	gi1 := n.permMod[ii+i1+n.perm[jj+j1]]
	gi2 := n.permMod[ii+1+n.perm[jj+1]]

	n0 := cornerContribution(x0, y0, grad2[gi0])
	n1 := cornerContribution(x1, y1, grad2[gi1])
	n2 := cornerContribution(x2, y2, grad2[gi2])

	return 70 * (n0 + n1 + n2)
}

func cornerContribution(x, y float64, g [2]float64) float64 {
	t := 0.5 - x*x - y*y
	if t < 0 {
		return 0
	}
	t *= t
	return t * t * dot2(g, x, y)
}

// FractalParams configures multi-octave noise summation.
type FractalParams struct {
	Octaves     int
	Persistence float64 // amplitude multiplier per octave
	Lacunarity  float64 // frequency multiplier per octave
	Scale       float64 // base frequency divisor
}

// Fractal2D sums Octaves layers of noise at increasing frequency and
// decreasing amplitude, normalized to roughly [-1, 1].
func (n *SimplexNoise2D) Fractal2D(x, y float64, p FractalParams) float64 {
	if p.Octaves <= 0 {
		p.Octaves = 1
	}
	if p.Scale <= 0 {
		p.Scale = 1
	}
	amplitude := 1.0
	frequency := 1.0 / p.Scale
	sum := 0.0
	max := 0.0
	for o := 0; o < p.Octaves; o++ {
		sum += n.Eval2D(x*frequency, y*frequency) * amplitude
		max += amplitude
		amplitude *= p.Persistence
		frequency *= p.Lacunarity
	}
	if max == 0 {
		return 0
	}
	return sum / max
}
