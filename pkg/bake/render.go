package bake

import (
	"fmt"
	"image"
	"image/draw"
)

// RenderAtlas draws every registered tile into its assigned page at its
// assigned slot, applying flipH/flipV/flipD per spec's rendering
// convention (flipD transposes, then flipH/flipV mirror). images maps
// tileset index to its decoded source image; columns maps tileset index
// to its column count, used to locate a tile id's row/col the same way
// wang.TilesetDef does.
//
// Standard library image/draw and image/png do the pixel work — not
// ebiten.Image, which requires a live graphics context the bake pipeline
// never has.
func RenderAtlas(registry *TileRegistry, images map[int]image.Image, columns map[int]int, layout AtlasLayout) ([]*image.RGBA, error) {
	pages := make([]*image.RGBA, layout.PageCount)
	for i := range pages {
		size := layout.PageSize
		if i == layout.PageCount-1 {
			size = layout.LastPageSize
		}
		pages[i] = image.NewRGBA(image.Rect(0, 0, size, size))
	}

	for i, key := range registry.Entries() {
		bakedID := i + 1
		page, col, row := layout.PageAndSlot(bakedID)
		if page >= len(pages) {
			return nil, fmt.Errorf("bake: baked id %d overflows %d computed atlas pages", bakedID, len(pages))
		}

		src, ok := images[key.TilesetIndex]
		if !ok {
			return nil, fmt.Errorf("bake: no source image registered for tileset %d", key.TilesetIndex)
		}
		cols := columns[key.TilesetIndex]
		if cols <= 0 {
			cols = 1
		}
		srcRow := key.TileID / cols
		srcCol := key.TileID % cols

		destX := col * layout.TileSize
		destY := row * layout.TileSize
		srcX := srcCol * layout.TileSize
		srcY := srcRow * layout.TileSize

		copyTile(pages[page], destX, destY, src, srcX, srcY, layout.TileSize, key.FlipH, key.FlipV, key.FlipD)
	}

	return pages, nil
}

// copyTile writes one size x size tile from src at (sx, sy) into dst at
// (dx, dy), mapping each destination pixel (x, y) to its source pixel by
// applying flipD, then flipH, then flipV, in that order, per the
// rendering convention.
func copyTile(dst *image.RGBA, dx, dy int, src image.Image, sx, sy, size int, flipH, flipV, flipD bool) {
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			px, py := x, y
			if flipD {
				px, py = py, px
			}
			if flipH {
				px = size - 1 - px
			}
			if flipV {
				py = size - 1 - py
			}
			draw.Draw(
				dst,
				image.Rect(dx+x, dy+y, dx+x+1, dy+y+1),
				src,
				image.Pt(sx+px, sy+py),
				draw.Src,
			)
		}
	}
}
