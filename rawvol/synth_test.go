package rawvol

import (
	"math"
	"testing"
)

func TestGradientEndpointsAndLength(t *testing.T) {
	vol := GradientVolume(16, 16, 16, Uint8)
	data := vol.Serialize()
	if len(data) != 4096 {
		t.Fatalf("expected 4096 bytes, got %d", len(data))
	}
	if vol.At(0, 0, 0) != 0 {
		t.Fatalf("voxel at z=0 should be 0, got %d", vol.At(0, 0, 0))
	}
	if vol.At(0, 0, 15) != 255 {
		t.Fatalf("voxel at z=15 should be 255, got %d", vol.At(0, 0, 15))
	}
}

func TestGradientMonotonicAlongZ(t *testing.T) {
	vol := GradientVolume(8, 8, 32, Uint16)
	prev := uint16(0)
	for z := 0; z < vol.D; z++ {
		v := vol.At(3, 5, z)
		if v < prev {
			t.Fatalf("gradient decreased at z=%d: %d < %d", z, v, prev)
		}
		prev = v
	}
	if vol.At(0, 0, vol.D-1) != Uint16.MaxValue() {
		t.Fatalf("last slice should hit type max, got %d", vol.At(0, 0, vol.D-1))
	}
}

func TestGradientConstantWithinSlice(t *testing.T) {
	vol := GradientVolume(4, 4, 4, Uint8)
	for z := 0; z < vol.D; z++ {
		want := vol.At(0, 0, z)
		for y := 0; y < vol.H; y++ {
			for x := 0; x < vol.W; x++ {
				if vol.At(x, y, z) != want {
					t.Fatalf("slice z=%d not uniform at (%d,%d)", z, x, y)
				}
			}
		}
	}
}

func TestGradientDepthOneDoesNotDivideByZero(t *testing.T) {
	vol := GradientVolume(4, 4, 1, Uint8)
	if vol.Len() != 16 {
		t.Fatalf("expected 16 voxels, got %d", vol.Len())
	}
	if vol.At(2, 2, 0) != 0 {
		t.Fatalf("depth-1 gradient should stay zero, got %d", vol.At(2, 2, 0))
	}
}

func TestSphereFalloff(t *testing.T) {
	const radius = 12.0
	vol := SphereVolume(32, 32, 32, Uint16, radius, 4095)
	cx, cy, cz := vol.W/2, vol.H/2, vol.D/2

	if vol.At(cx, cy, cz) != 4095 {
		t.Fatalf("center voxel should be 4095, got %d", vol.At(cx, cy, cz))
	}
	for z := 0; z < vol.D; z++ {
		for y := 0; y < vol.H; y++ {
			for x := 0; x < vol.W; x++ {
				dx := float64(x - cx)
				dy := float64(y - cy)
				dz := float64(z - cz)
				dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
				v := vol.At(x, y, z)
				if dist >= radius && v != 0 {
					t.Fatalf("voxel (%d,%d,%d) at dist %.2f should be 0, got %d", x, y, z, dist, v)
				}
				if dist < radius && dist < radius-1 && v == 0 {
					t.Fatalf("interior voxel (%d,%d,%d) at dist %.2f should be positive", x, y, z, dist)
				}
			}
		}
	}
}

func TestSphereDefaultPeak(t *testing.T) {
	vol8 := SphereVolume(16, 16, 16, Uint8, 6, 0)
	if got := vol8.At(8, 8, 8); got != 255 {
		t.Fatalf("uint8 default peak should be 255, got %d", got)
	}
	vol16 := SphereVolume(16, 16, 16, Uint16, 6, 0)
	if got := vol16.At(8, 8, 8); got != 4095 {
		t.Fatalf("uint16 default peak should be 4095, got %d", got)
	}
}

func TestCheckerBlockParity(t *testing.T) {
	const block = 8
	vol := CheckerVolume(32, 32, 32, Uint8, block)
	maxVal := Uint8.MaxValue()

	if vol.At(0, 0, 0) != maxVal {
		t.Fatalf("origin block should be max, got %d", vol.At(0, 0, 0))
	}
	// Any two voxels one block apart along one axis must differ.
	for z := 0; z < vol.D-block; z += block {
		for y := 0; y < vol.H-block; y += block {
			for x := 0; x < vol.W-block; x += block {
				v := vol.At(x, y, z)
				if vol.At(x+block, y, z) == v || vol.At(x, y+block, z) == v || vol.At(x, y, z+block) == v {
					t.Fatalf("adjacent blocks at (%d,%d,%d) do not alternate", x, y, z)
				}
			}
		}
	}
	// Uniform inside one block.
	for z := 0; z < block; z++ {
		for y := 0; y < block; y++ {
			for x := 0; x < block; x++ {
				if vol.At(x, y, z) != maxVal {
					t.Fatalf("voxel (%d,%d,%d) inside first block should be max", x, y, z)
				}
			}
		}
	}
}

func TestCheckerPartialBlocks(t *testing.T) {
	// 20 is not a multiple of 8; the trailing 4-wide partial block must
	// still follow the parity rule.
	vol := CheckerVolume(20, 20, 20, Uint8, 8)
	if got := vol.At(17, 0, 0); got != Uint8.MaxValue() {
		t.Fatalf("partial block (bx=2, even parity) should be max, got %d", got)
	}
	if got := vol.At(17, 9, 0); got != 0 {
		t.Fatalf("partial block with odd parity should be 0, got %d", got)
	}
}
