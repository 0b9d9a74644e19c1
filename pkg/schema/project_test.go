package schema

import (
	"errors"
	"testing"
)

func validProjectJSON() string {
	return `{
		"version": 2,
		"tilesets": [{"image":"terrain.png","tileWidth":16,"tileHeight":16,"columns":8,"tileCount":64}],
		"transformations": {"allowRotate": true, "allowFlipH": true, "allowFlipV": true},
		"wangSets": [{
			"name": "terrain",
			"type": "mixed",
			"colors": [
				{"id":1,"name":"grass","probability":1},
				{"id":2,"name":"water","probability":1}
			],
			"wangTiles": [
				{"tilesetIndex":0,"tileId":0,"wangId":[1,1,1,1,1,1,1,1]},
				{"tilesetIndex":0,"tileId":1,"wangId":[2,2,2,2,2,2,2,2]}
			]
		}]
	}`
}

func TestParseProjectMetadataValid(t *testing.T) {
	meta, err := ParseProjectMetadata([]byte(validProjectJSON()))
	if err != nil {
		t.Fatalf("ParseProjectMetadata: %v", err)
	}
	if len(meta.WangSets) != 1 || meta.WangSets[0].Name != "terrain" {
		t.Fatalf("unexpected wangsets: %+v", meta.WangSets)
	}
}

func TestParseProjectMetadataRejectsBadVersion(t *testing.T) {
	_, err := ParseProjectMetadata([]byte(`{"version":1,"tilesets":[{}]}`))
	var schemaErr *SchemaError
	if err == nil {
		t.Fatalf("expected an error for unsupported version")
	}
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected a *SchemaError, got %T: %v", err, err)
	}
}

func TestParseProjectMetadataRejectsUnknownColorReference(t *testing.T) {
	data := `{
		"version": 2,
		"tilesets": [{"image":"t.png","tileWidth":16,"tileHeight":16,"columns":8,"tileCount":64}],
		"wangSets": [{
			"name": "terrain",
			"type": "mixed",
			"colors": [{"id":1,"name":"grass","probability":1}],
			"wangTiles": [{"tilesetIndex":0,"tileId":0,"wangId":[9,0,0,0,0,0,0,0]}]
		}]
	}`
	_, err := ParseProjectMetadata([]byte(data))
	var refErr *ReferentialError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected a *ReferentialError, got %T: %v", err, err)
	}
}

func TestBuildWangSetConstructsVariantsAndDistances(t *testing.T) {
	meta, err := ParseProjectMetadata([]byte(validProjectJSON()))
	if err != nil {
		t.Fatalf("ParseProjectMetadata: %v", err)
	}
	set, err := BuildWangSet(meta, "terrain")
	if err != nil {
		t.Fatalf("BuildWangSet: %v", err)
	}
	if len(set.AllVariants()) == 0 {
		t.Fatalf("expected variants to be generated")
	}
	if d := set.ColorDistance(1, 1); d != 0 {
		t.Fatalf("ColorDistance(1,1) = %d, want 0", d)
	}
}

func TestBuildWangSetUnknownName(t *testing.T) {
	meta, err := ParseProjectMetadata([]byte(validProjectJSON()))
	if err != nil {
		t.Fatalf("ParseProjectMetadata: %v", err)
	}
	_, err = BuildWangSet(meta, "nope")
	var refErr *ReferentialError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected a *ReferentialError, got %T: %v", err, err)
	}
}
