package autotile

import "sort"

// PaintResult reports everything a paint or flood-fill operation touched.
type PaintResult struct {
	// Painted lists every cell whose color changed, including cascade-
	// inserted intermediates, in no particular order.
	Painted []Point
	// BrokenEdges lists cells where two neighboring colors had no path
	// between them in the wangset's color graph, so no intermediate
	// could be inserted; the two colors simply abut with whatever tile
	// the resolver's soft-penalty scoring judges closest.
	BrokenEdges []Point
}

// cardinalOffsets are the four edge-slot offsets of slotOffsets (T, R, B, L).
var cardinalOffsets = [4]Point{slotOffsets[0], slotOffsets[2], slotOffsets[4], slotOffsets[6]}

// cascadeAndResolve runs phase 2 (BFS cascade of intermediate colors) and
// phase 3 (center-outward re-resolve) starting from a set of already-
// painted seed cells.
func cascadeAndResolve(m *AutotileMap, seeds []Point, origin Point) (PaintResult, error) {
	touched := append([]Point{}, seeds...)
	queue := append([]Point{}, seeds...)
	queued := make(map[Point]bool)
	for _, p := range seeds {
		queued[p] = true
	}
	var broken []Point

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		queued[cur] = false
		curColor := m.Color(cur.X, cur.Y)
		if curColor == 0 {
			continue
		}

		for _, n := range m.neighbors8(cur.X, cur.Y) {
			nc := m.Color(n.X, n.Y)
			if nc == 0 {
				continue
			}

			d := m.Set.ColorDistance(curColor, nc)
			if d < 0 {
				broken = append(broken, n)
				continue
			}
			if d <= 1 {
				continue
			}

			step := m.Set.NextHopColor(curColor, nc)
			if step <= 0 {
				step = curColor
			}
			m.setColor(n.X, n.Y, step)
			touched = append(touched, n)
			if !queued[n] {
				queued[n] = true
				queue = append(queue, n)
			}
		}
	}

	affected := make(map[Point]bool)
	for _, p := range touched {
		affected[p] = true
		for _, n := range m.neighbors8(p.X, p.Y) {
			affected[n] = true
		}
	}
	ring := make([]Point, 0, len(affected))
	for p := range affected {
		ring = append(ring, p)
	}
	sort.Slice(ring, func(i, j int) bool {
		di, dj := manhattan(ring[i], origin), manhattan(ring[j], origin)
		if di != dj {
			return di < dj
		}
		if ring[i].Y != ring[j].Y {
			return ring[i].Y < ring[j].Y
		}
		return ring[i].X < ring[j].X
	})

	for _, p := range ring {
		if err := m.resolveCell(p.X, p.Y); err != nil {
			return PaintResult{}, err
		}
	}

	return PaintResult{Painted: touched, BrokenEdges: broken}, nil
}

// ApplyTerrainPaint paints a single cell with color, cascades intermediate
// colors into any newly-adjacent gaps, and re-resolves every affected tile
// outward from (x, y).
func ApplyTerrainPaint(m *AutotileMap, x, y, color int) (PaintResult, error) {
	if !m.InBounds(x, y) {
		return PaintResult{}, nil
	}
	if m.Color(x, y) == color {
		return PaintResult{}, nil
	}
	m.setColor(x, y, color)
	origin := Point{x, y}
	return cascadeAndResolve(m, []Point{origin}, origin)
}

// FloodFillTerrain replaces every 4-connected cell sharing (x, y)'s
// original color with color, then cascades from every cell of the region
// and re-resolves the region plus one ring around it, the same way
// ApplyTerrainPaint does for a single cell.
func FloodFillTerrain(m *AutotileMap, x, y, color int) (PaintResult, error) {
	if !m.InBounds(x, y) {
		return PaintResult{}, nil
	}
	oldColor := m.Color(x, y)
	if oldColor == color {
		return PaintResult{}, nil
	}

	var region []Point
	visited := map[Point]bool{{x, y}: true}
	queue := []Point{{x, y}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if m.Color(cur.X, cur.Y) != oldColor {
			continue
		}
		m.setColor(cur.X, cur.Y, color)
		region = append(region, cur)

		for _, off := range cardinalOffsets {
			n := Point{cur.X + off.X, cur.Y + off.Y}
			if !m.InBounds(n.X, n.Y) || visited[n] {
				continue
			}
			if m.Color(n.X, n.Y) == oldColor {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return cascadeAndResolve(m, region, Point{x, y})
}
