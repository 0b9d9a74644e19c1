package procgen

// Grid is a row-major width*height color buffer, the common currency
// between every generator in this package and autotile.LoadColors.
type Grid struct {
	Width  int
	Height int
	Colors []int
}

// NewGrid allocates a grid filled with color 0 (empty).
func NewGrid(width, height int) *Grid {
	return &Grid{Width: width, Height: height, Colors: make([]int, width*height)}
}

func (g *Grid) At(x, y int) int {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.Colors[y*g.Width+x]
}

func (g *Grid) Set(x, y, color int) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.Colors[y*g.Width+x] = color
}

func (g *Grid) neighbors8(x, y int) []int {
	out := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || ny < 0 || nx >= g.Width || ny >= g.Height {
				continue
			}
			out = append(out, g.Colors[ny*g.Width+nx])
		}
	}
	return out
}
