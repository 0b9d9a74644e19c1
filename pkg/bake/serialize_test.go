package bake

import (
	"bytes"
	"testing"
)

func TestWriteReadLayerBinaryRoundTrip(t *testing.T) {
	ids := []int{0, 1, 2, 65535, 42}
	var buf bytes.Buffer
	if err := WriteLayerBinary(&buf, ids); err != nil {
		t.Fatalf("WriteLayerBinary: %v", err)
	}
	if buf.Len() != len(ids)*2 {
		t.Fatalf("wrote %d bytes, want %d", buf.Len(), len(ids)*2)
	}
	got, err := ReadLayerBinary(&buf, len(ids))
	if err != nil {
		t.Fatalf("ReadLayerBinary: %v", err)
	}
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("round trip mismatch at %d: got %d, want %d", i, got[i], ids[i])
		}
	}
}

func TestWriteLayerBinaryRejectsOversizedID(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLayerBinary(&buf, []int{70000}); err == nil {
		t.Fatalf("expected an error for an id that doesn't fit in a uint16")
	}
}
