package procgen

import "testing"

func TestSimplexNoiseDeterministic(t *testing.T) {
	a := NewSimplexNoise2D(NewRng(5))
	b := NewSimplexNoise2D(NewRng(5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			av := a.Eval2D(float64(x)*0.1, float64(y)*0.1)
			bv := b.Eval2D(float64(x)*0.1, float64(y)*0.1)
			if av != bv {
				t.Fatalf("noise diverged at (%d,%d): %f vs %f", x, y, av, bv)
			}
		}
	}
}

func TestSimplexNoiseBounded(t *testing.T) {
	n := NewSimplexNoise2D(NewRng(123))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := n.Eval2D(float64(x)*0.3, float64(y)*0.3)
			if v < -1.5 || v > 1.5 {
				t.Fatalf("noise value %f at (%d,%d) out of expected range", v, x, y)
			}
		}
	}
}

func TestFractal2DDeterministic(t *testing.T) {
	params := FractalParams{Octaves: 4, Persistence: 0.5, Lacunarity: 2, Scale: 8}
	a := NewSimplexNoise2D(NewRng(10))
	b := NewSimplexNoise2D(NewRng(10))
	for i := 0; i < 10; i++ {
		av := a.Fractal2D(float64(i), float64(i)*2, params)
		bv := b.Fractal2D(float64(i), float64(i)*2, params)
		if av != bv {
			t.Fatalf("fractal noise diverged at step %d: %f vs %f", i, av, bv)
		}
	}
}
