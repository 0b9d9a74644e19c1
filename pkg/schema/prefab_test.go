package schema

import "testing"

func TestParsePrefabAndConvert(t *testing.T) {
	data := `{
		"version": 2,
		"name": "tree",
		"anchorX": 1,
		"anchorY": 1,
		"layers": [[{"x":1,"y":1,"tileId":3,"tilesetIndex":0}],[],[],[],[]]
	}`
	sp, err := ParsePrefab([]byte(data))
	if err != nil {
		t.Fatalf("ParsePrefab: %v", err)
	}
	p := ToPrefab(sp)
	if p.Name != "tree" || p.AnchorX != 1 {
		t.Fatalf("unexpected conversion: %+v", p)
	}
	if len(p.Layers[0]) != 1 || p.Layers[0][0].TileID != 3 {
		t.Fatalf("unexpected layer 0: %+v", p.Layers[0])
	}
}

func TestParsePrefabRejectsEmptyName(t *testing.T) {
	data := `{"version":2,"name":""}`
	_, err := ParsePrefab([]byte(data))
	if err == nil {
		t.Fatalf("expected an error for an empty prefab name")
	}
}
