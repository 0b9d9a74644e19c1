package schema

import "encoding/json"

const (
	savedMapVersion = 2
	MapLayerCount   = 9
)

// PlacedPrefabEntry is one prefab placement as stored in a saved map.
type PlacedPrefabEntry struct {
	PrefabName string `json:"prefabName"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Layer      int    `json:"layer"`
}

// SavedMap is the on-disk format for a single map: its wang colors
// (MapLayerCount layers, each a row-major width*height int slice) plus
// any prefab placements.
type SavedMap struct {
	Version       int                  `json:"version"`
	Name          string               `json:"name"`
	WangSetName   string               `json:"wangSetName"`
	Width         int                  `json:"width"`
	Height        int                  `json:"height"`
	Layers        [MapLayerCount][]int `json:"layers"`
	PlacedPrefabs []PlacedPrefabEntry  `json:"placedPrefabs"`
}

// ParseMap decodes and structurally validates a saved map document. It
// does not check wangSetName or prefab names against a loaded project —
// call ValidateMapReferences for that once the project and prefab set
// are available.
func ParseMap(data []byte) (*SavedMap, error) {
	var m SavedMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &IOError{Path: "<map>", Err: err}
	}
	if m.Version != savedMapVersion {
		return nil, newSchemaError("map", "unsupported version %d (want %d)", m.Version, savedMapVersion)
	}
	if m.Width <= 0 || m.Height <= 0 {
		return nil, newSchemaError("map", "width and height must be positive, got %dx%d", m.Width, m.Height)
	}
	want := m.Width * m.Height
	for i, layer := range m.Layers {
		if layer != nil && len(layer) != want {
			return nil, newSchemaError("map", "layer %d has %d cells, want %d (%dx%d)", i, len(layer), want, m.Width, m.Height)
		}
	}
	return &m, nil
}

// ValidateMapReferences checks a parsed map's cross references: its
// wangset name must be one of knownWangSets, and every placed prefab
// name must be one of knownPrefabs.
func ValidateMapReferences(m *SavedMap, knownWangSets, knownPrefabs map[string]bool) error {
	if !knownWangSets[m.WangSetName] {
		return newReferentialError("map", "map %q references unknown wangset %q", m.Name, m.WangSetName)
	}
	for _, pp := range m.PlacedPrefabs {
		if !knownPrefabs[pp.PrefabName] {
			return newReferentialError("map", "map %q places unknown prefab %q", m.Name, pp.PrefabName)
		}
	}
	return nil
}
