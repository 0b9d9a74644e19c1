package bake

import (
	"image"
	"image/color"
	"testing"
)

func markerImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 50), B: 0, A: 255})
		}
	}
	return img
}

// TestCopyTileFlipOrderMatchesSpecExample reproduces the worked example:
// destination (1,0) in a 4x4 tile with flipH and flipD both set must
// read from source pixel (3,1) — flipD (swap) is applied before flipH.
func TestCopyTileFlipOrderMatchesSpecExample(t *testing.T) {
	src := markerImage(4)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	copyTile(dst, 0, 0, src, 0, 0, 4, true, false, true)

	got := dst.RGBAAt(1, 0)
	want := src.RGBAAt(3, 1)
	if got != want {
		t.Fatalf("dest(1,0) with flipH+flipD = %+v, want source(3,1) = %+v", got, want)
	}
}

func TestCopyTileNoFlipIsIdentity(t *testing.T) {
	src := markerImage(4)
	dst := image.NewRGBA(image.Rect(0, 0, 4, 4))

	copyTile(dst, 0, 0, src, 0, 0, 4, false, false, false)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if dst.RGBAAt(x, y) != src.RGBAAt(x, y) {
				t.Fatalf("dest(%d,%d) = %+v, want %+v", x, y, dst.RGBAAt(x, y), src.RGBAAt(x, y))
			}
		}
	}
}
