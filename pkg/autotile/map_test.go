package autotile

import "testing"

func TestAutotileMapEmptyInvariant(t *testing.T) {
	set := buildTestWangSet(t)
	m := NewAutotileMap(4, 4, set)

	if c := m.Color(1, 1); c != 0 {
		t.Fatalf("fresh map color = %d, want 0", c)
	}
	cell := m.Cell(1, 1)
	if cell.HasTile {
		t.Fatalf("fresh map cell has a tile: %+v", cell)
	}
}

func TestAutotileMapOutOfBoundsColorIsZero(t *testing.T) {
	set := buildTestWangSet(t)
	m := NewAutotileMap(2, 2, set)

	if c := m.Color(-1, 0); c != 0 {
		t.Errorf("out-of-bounds color = %d, want 0", c)
	}
	if c := m.Color(5, 5); c != 0 {
		t.Errorf("out-of-bounds color = %d, want 0", c)
	}
}

func TestDesiredWangIDUsesNeighborColors(t *testing.T) {
	set := buildTestWangSet(t)
	m := NewAutotileMap(3, 3, set)
	m.setColor(1, 0, 1) // T neighbor of (1,1)
	m.setColor(2, 1, 2) // R neighbor of (1,1)

	desired := m.desiredWangID(1, 1)
	if desired[0] != 1 {
		t.Errorf("desired[T] = %d, want 1", desired[0])
	}
	if desired[2] != 2 {
		t.Errorf("desired[R] = %d, want 2", desired[2])
	}
	if desired[4] != 0 {
		t.Errorf("desired[B] = %d, want 0 (unset)", desired[4])
	}
}
