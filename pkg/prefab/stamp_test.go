package prefab

import "testing"

func TestResolveTranslatesByAnchorAndPosition(t *testing.T) {
	p := &Prefab{Name: "tree", AnchorX: 1, AnchorY: 2}
	p.Layers[0] = []Tile{{X: 1, Y: 2, TileID: 5, TilesetIndex: 0}}
	p.Layers[1] = []Tile{{X: 1, Y: 1, TileID: 6, TilesetIndex: 0}}

	stamped := Resolve(p, PlacedPrefab{PrefabName: "tree", X: 10, Y: 10, Layer: 3}, NumLayers)
	if len(stamped) != 2 {
		t.Fatalf("got %d stamped tiles, want 2", len(stamped))
	}
	if stamped[0].X != 10 || stamped[0].Y != 10 || stamped[0].Layer != 3 {
		t.Fatalf("unexpected anchor tile placement: %+v", stamped[0])
	}
	if stamped[1].X != 10 || stamped[1].Y != 9 || stamped[1].Layer != 4 {
		t.Fatalf("unexpected second layer placement: %+v", stamped[1])
	}
}

func TestResolveDropsOutOfRangeLayers(t *testing.T) {
	p := &Prefab{Name: "tall"}
	for i := range p.Layers {
		p.Layers[i] = []Tile{{TileID: i}}
	}
	stamped := Resolve(p, PlacedPrefab{Layer: 7}, 9)
	for _, s := range stamped {
		if s.Layer >= 9 {
			t.Fatalf("got out-of-range layer %d", s.Layer)
		}
	}
	if len(stamped) != 2 {
		t.Fatalf("got %d stamped tiles, want 2 (layers 7,8 only)", len(stamped))
	}
}
