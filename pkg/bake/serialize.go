package bake

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteLayerBinary writes a row-major layer of baked tile ids as
// little-endian uint16 values. Ids above 65535 are a caller bug — the
// registry never produces that many distinct baked tiles in practice —
// and are rejected rather than silently truncated.
func WriteLayerBinary(w io.Writer, bakedIDs []int) error {
	buf := make([]byte, 2)
	for _, id := range bakedIDs {
		if id < 0 || id > 0xFFFF {
			return fmt.Errorf("bake: baked id %d does not fit in a uint16", id)
		}
		binary.LittleEndian.PutUint16(buf, uint16(id))
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// ReadLayerBinary reads back a layer written by WriteLayerBinary.
func ReadLayerBinary(r io.Reader, count int) ([]int, error) {
	buf := make([]byte, 2*count)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	out := make([]int, count)
	for i := range out {
		out[i] = int(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return out, nil
}
