package wang

import "fmt"

// TileRef addresses a single tile within a tileset.
type TileRef struct {
	TilesetIndex int
	TileID       int
}

// Color is a terrain color usable in a WangSet. Ids are dense and 1-based;
// id 0 is reserved to mean "empty/erase" and is never registered as a Color.
type Color struct {
	ID          int
	Name        string
	Swatch      string // hex string, UI display only — never consulted by the resolver
	Probability float64
	Tile        TileRef
	HasTile     bool // whether Tile is meaningful (used by UI / flood-fill seeding)
}

// TilesetDef is an immutable image descriptor. Tiles are addressed
// row-major, left-to-right, top-to-bottom.
type TilesetDef struct {
	Image      string
	TileWidth  int
	TileHeight int
	Columns    int
	TileCount  int
}

// TileID returns the row-major tile id for the given row and column.
func (t TilesetDef) TileID(row, col int) int {
	return row*t.Columns + col
}

// RowCol returns the row and column of the given row-major tile id.
func (t TilesetDef) RowCol(tileID int) (row, col int) {
	return tileID / t.Columns, tileID % t.Columns
}

// errInvalid reports a registry invariant violation. These are caller bugs
// (malformed construction), not recoverable run-time conditions, and are
// reported as errors rather than panics so that schema/load code can
// surface them through the usual error path.
func errInvalid(format string, args ...any) error {
	return fmt.Errorf("wang: "+format, args...)
}
