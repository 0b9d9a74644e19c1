package autotile

import (
	"fmt"

	"github.com/phanxgames/autoterrain/pkg/wang"
)

// Point is a grid coordinate.
type Point struct {
	X int
	Y int
}

// Cell is a single rendered tile. HasTile is false for a cell whose color
// is 0 (empty) — the resolver never assigns a tile there.
type Cell struct {
	HasTile      bool
	TileID       int
	TilesetIndex int
	FlipH        bool
	FlipV        bool
	FlipD        bool
}

// slotOffsets maps each WangId compass slot to its (dx, dy) neighbor
// offset, in the same T, TR, R, BR, B, BL, L, TL order as wang.SlotT..
var slotOffsets = [8]Point{
	{0, -1},
	{1, -1},
	{1, 0},
	{1, 1},
	{0, 1},
	{-1, 1},
	{-1, 0},
	{-1, -1},
}

// AutotileMap is a rectangular grid of wang colors and the tiles resolved
// from them against a single wang.WangSet.
type AutotileMap struct {
	Width  int
	Height int
	Set    *wang.WangSet

	colors []int
	cells  []Cell
}

// NewAutotileMap creates an empty (all colors 0) grid of the given size.
func NewAutotileMap(width, height int, set *wang.WangSet) *AutotileMap {
	return &AutotileMap{
		Width:  width,
		Height: height,
		Set:    set,
		colors: make([]int, width*height),
		cells:  make([]Cell, width*height),
	}
}

func (m *AutotileMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.Width && y < m.Height
}

func (m *AutotileMap) index(x, y int) int {
	return y*m.Width + x
}

// Color returns the wang color at (x, y), or 0 if out of bounds.
func (m *AutotileMap) Color(x, y int) int {
	if !m.InBounds(x, y) {
		return 0
	}
	return m.colors[m.index(x, y)]
}

// setColor sets the raw color without touching the rendered cell. Callers
// must re-resolve affected cells afterward.
func (m *AutotileMap) setColor(x, y, color int) {
	m.colors[m.index(x, y)] = color
	if color == 0 {
		m.cells[m.index(x, y)] = Cell{}
	}
}

// Cell returns the rendered tile at (x, y).
func (m *AutotileMap) Cell(x, y int) Cell {
	if !m.InBounds(x, y) {
		return Cell{}
	}
	return m.cells[m.index(x, y)]
}

func (m *AutotileMap) setCell(x, y int, c Cell) {
	m.cells[m.index(x, y)] = c
}

// colorOrSelf returns the color at (x, y), falling back to the color of
// the cell itself when the neighbor is out of bounds (the map edge is
// treated as an extension of the current cell, not as empty).
func (m *AutotileMap) colorOrSelf(x, y, selfX, selfY int) int {
	if m.InBounds(x, y) {
		return m.colors[m.index(x, y)]
	}
	return m.colors[m.index(selfX, selfY)]
}

// desiredWangID builds the pattern a tile at (x, y) should satisfy from
// its neighbor colors. The slots consulted depend on the wang-set's type:
// a corner set fills TL, TR, BR and BL from (x, y), (x+1, y), (x+1, y+1)
// and (x, y+1), leaving the edge slots 0; an edge set reads the four
// cardinal neighbors; and a mixed set reads all eight neighbors.
// Out-of-bounds neighbors take the color of (x, y) itself.
func (m *AutotileMap) desiredWangID(x, y int) wang.WangId {
	var id wang.WangId
	self := m.colors[m.index(x, y)]
	switch m.Set.Type {
	case wang.TypeCorner:
		id[wang.SlotTL] = self
		id[wang.SlotTR] = m.colorOrSelf(x+1, y, x, y)
		id[wang.SlotBR] = m.colorOrSelf(x+1, y+1, x, y)
		id[wang.SlotBL] = m.colorOrSelf(x, y+1, x, y)
	case wang.TypeEdge:
		for i := 0; i < 8; i += 2 {
			off := slotOffsets[i]
			id[i] = m.colorOrSelf(x+off.X, y+off.Y, x, y)
		}
	default: // TypeMixed
		for i, off := range slotOffsets {
			id[i] = m.colorOrSelf(x+off.X, y+off.Y, x, y)
		}
	}
	return id
}

// resolveCell finds the best matching variant for (x, y)'s current
// neighbor colors and writes it into the cell grid. A color-0 cell is
// always cleared rather than resolved.
func (m *AutotileMap) resolveCell(x, y int) error {
	if m.Color(x, y) == 0 {
		m.setCell(x, y, Cell{})
		return nil
	}
	desired := m.desiredWangID(x, y)
	v, ok := wang.FindBestMatch(m.Set, desired, x, y)
	if !ok {
		return fmt.Errorf("autotile: no variant available in wangset %q to resolve (%d,%d)", m.Set.Name, x, y)
	}
	m.setCell(x, y, Cell{
		HasTile:      true,
		TileID:       v.BaseTileID,
		TilesetIndex: v.TilesetIndex,
		FlipH:        v.FlipH,
		FlipV:        v.FlipV,
		FlipD:        v.FlipD,
	})
	return nil
}

// neighbors8 returns the in-bounds 8-neighborhood of (x, y).
func (m *AutotileMap) neighbors8(x, y int) []Point {
	out := make([]Point, 0, 8)
	for _, off := range slotOffsets {
		nx, ny := x+off.X, y+off.Y
		if m.InBounds(nx, ny) {
			out = append(out, Point{nx, ny})
		}
	}
	return out
}

func manhattan(a, b Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
