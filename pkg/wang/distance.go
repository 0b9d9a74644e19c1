package wang

// BuildDistanceMatrices computes the all-pairs shortest path and next-hop
// matrices for a WangSet's colors, using the tile mappings as the edge
// source: two colors are adjacent (distance 1) whenever some tile's
// WangId carries both of them, in any two slots — not just ring-adjacent
// ones, since a corner-type tile's colors sit only in the odd slots and
// an edge-type tile's only in the even slots, never next to each other
// in compass order. Colors that never co-occur in any tile stay at
// distance -1 (unreachable).
//
// Both matrices are installed onto set directly via SetDistanceMatrix and
// SetNextHopMatrix; set.Colors() must already be populated before calling.
func BuildDistanceMatrices(set *WangSet) {
	n := 0
	for _, c := range set.Colors() {
		if c.ID > n {
			n = c.ID
		}
	}
	size := n + 1

	const inf = 1 << 30

	dist := make([][]int, size)
	next := make([][]int, size)
	for i := range dist {
		dist[i] = make([]int, size)
		next[i] = make([]int, size)
		for j := range dist[i] {
			if i == j {
				dist[i][j] = 0
			} else {
				dist[i][j] = inf
			}
			next[i][j] = -1
		}
	}

	addEdge := func(a, b int) {
		if a == b || a <= 0 || b <= 0 {
			return
		}
		if dist[a][b] > 1 {
			dist[a][b] = 1
			dist[b][a] = 1
			next[a][b] = b
			next[b][a] = a
		}
	}

	for _, tm := range set.TileMappings() {
		id := tm.WangID
		for i := 0; i < 8; i++ {
			for j := i + 1; j < 8; j++ {
				addEdge(id[i], id[j])
			}
		}
	}

	for k := 1; k < size; k++ {
		for i := 1; i < size; i++ {
			if dist[i][k] == inf {
				continue
			}
			for j := 1; j < size; j++ {
				if dist[k][j] == inf {
					continue
				}
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 1; i < size; i++ {
		for j := 1; j < size; j++ {
			if dist[i][j] == inf {
				dist[i][j] = -1
			}
		}
	}

	set.SetDistanceMatrix(dist)
	set.SetNextHopMatrix(next)
}
