package rawvol

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func makeTestPack() *Pack {
	var p Pack
	p.Add("grad.raw", GradientVolume(8, 8, 8, Uint8), [3]float64{1, 1, 1}, "gradient")
	p.Add("sphere.raw", SphereVolume(8, 8, 8, Uint16, 3, 4095), [3]float64{1, 1, 1}, "sphere")
	p.Add("checker.raw", CheckerVolume(8, 8, 8, Uint8, 2), [3]float64{1, 1, 1}, "checker")
	return &p
}

func TestPackRoundtrip(t *testing.T) {
	for _, comp := range []PackCompression{PackCompNone, PackCompZlib, PackCompZstd} {
		p := makeTestPack()
		data, err := p.Marshal(comp)
		if err != nil {
			t.Fatalf("Marshal(comp=%d) failed: %v", comp, err)
		}
		back, gotComp, err := UnmarshalPack(data)
		if err != nil {
			t.Fatalf("UnmarshalPack(comp=%d) failed: %v", comp, err)
		}
		if gotComp != comp {
			t.Fatalf("compression changed: got %d, want %d", gotComp, comp)
		}
		if len(back.Entries) != len(p.Entries) {
			t.Fatalf("entry count changed: %d != %d", len(back.Entries), len(p.Entries))
		}
		for i, e := range back.Entries {
			if e.Name != p.Entries[i].Name {
				t.Fatalf("entry %d name changed: %s", i, e.Name)
			}
			if !bytes.Equal(e.Payload, p.Entries[i].Payload) {
				t.Fatalf("entry %s payload changed", e.Name)
			}
			if e.Meta != p.Entries[i].Meta {
				t.Fatalf("entry %s metadata changed", e.Name)
			}
		}
	}
}

func TestPackRejectsCorruptPayload(t *testing.T) {
	p := makeTestPack()
	data, err := p.Marshal(PackCompNone)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// flip a payload byte near the end of the uncompressed content
	data[len(data)-20] ^= 0xFF
	if _, _, err := UnmarshalPack(data); err == nil {
		t.Fatalf("expected digest mismatch, got nil")
	}
}

func TestPackRejectsBadMagic(t *testing.T) {
	if _, _, err := UnmarshalPack([]byte("NOTAPACKxx")); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func TestCreateAndUnpack(t *testing.T) {
	dir := t.TempDir()
	grad := filepath.Join(dir, "grad.raw")
	checker := filepath.Join(dir, "checker.raw")
	if err := SaveVolume(GradientVolume(16, 16, 16, Uint8), grad, [3]float64{1, 1, 1}, "gradient"); err != nil {
		t.Fatalf("SaveVolume failed: %v", err)
	}
	if err := SaveVolume(CheckerVolume(16, 16, 16, Uint8, 4), checker, [3]float64{1, 1, 1}, "checker"); err != nil {
		t.Fatalf("SaveVolume failed: %v", err)
	}

	packFile := filepath.Join(dir, "suite.rvpack")
	if err := CreatePack([]string{grad, checker}, packFile, PackCompZstd); err != nil {
		t.Fatalf("CreatePack failed: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	if err := UnpackPack(packFile, outDir); err != nil {
		t.Fatalf("UnpackPack failed: %v", err)
	}

	orig, err := os.ReadFile(grad)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(outDir, "grad.raw"))
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(orig, got) {
		t.Fatalf("unpacked raw differs from original")
	}
	if _, err := LoadMetadata(filepath.Join(outDir, "checker.json")); err != nil {
		t.Fatalf("unpacked sidecar invalid: %v", err)
	}
}

func TestCreatePackNoInputs(t *testing.T) {
	if err := CreatePack(nil, "out.rvpack", PackCompNone); err == nil {
		t.Fatalf("expected error for empty input list")
	}
}
