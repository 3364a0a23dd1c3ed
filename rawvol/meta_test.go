package rawvol

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestMetadataFieldNames(t *testing.T) {
	meta := MetadataFor(NewVolume(16, 16, 16, Uint8), [3]float64{1, 1, 1}, "Simple 16x16x16 gradient test volume")
	b, err := json.Marshal(meta)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	for _, key := range []string{"dimensions", "dataType", "byteOrder", "spacing", "description"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("sidecar missing field %q", key)
		}
	}
	if len(raw) != 5 {
		t.Fatalf("sidecar should have exactly 5 fields, got %d", len(raw))
	}
	if raw["byteOrder"] != "little-endian" {
		t.Fatalf("byteOrder should be little-endian, got %v", raw["byteOrder"])
	}
	if raw["dataType"] != "uint8" {
		t.Fatalf("dataType should be uint8, got %v", raw["dataType"])
	}
}

func TestMetadataByteSize(t *testing.T) {
	m := Metadata{Dimensions: [3]int{32, 32, 32}, DataType: "uint16", ByteOrder: "little-endian"}
	n, err := m.ByteSize()
	if err != nil {
		t.Fatalf("ByteSize failed: %v", err)
	}
	if n != 65536 {
		t.Fatalf("expected 65536, got %d", n)
	}

	m.DataType = "float32"
	if _, err := m.ByteSize(); err == nil {
		t.Fatalf("expected error for unsupported dataType")
	}

	m.DataType = "uint8"
	m.Dimensions[1] = 0
	if _, err := m.ByteSize(); err == nil {
		t.Fatalf("expected error for zero dimension")
	}
}

func TestWriteLoadMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vol.json")
	in := Metadata{
		Dimensions:  [3]int{64, 64, 64},
		DataType:    "uint8",
		ByteOrder:   "little-endian",
		Spacing:     [3]float64{0.5, 0.5, 2},
		Description: "Test gradient volume (uint8)",
	}
	if err := WriteMetadata(in, path); err != nil {
		t.Fatalf("WriteMetadata failed: %v", err)
	}
	out, err := LoadMetadata(path)
	if err != nil {
		t.Fatalf("LoadMetadata failed: %v", err)
	}
	if out != in {
		t.Fatalf("metadata changed in roundtrip: %+v != %+v", out, in)
	}

	// sidecar is written indented, like the original generator output
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(b[:14]) != "{\n  \"dimension" {
		t.Fatalf("sidecar not 2-space indented: %q", b[:14])
	}
}

func TestLoadMetadataRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadMetadata(path); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}
