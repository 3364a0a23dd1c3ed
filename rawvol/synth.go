package rawvol

import "math"

// GradientVolume fills a volume with values increasing along z:
// value(z) = z * typeMax / (depth-1), so the first slice is 0 and the
// last slice is the type's maximum. The divisor is clamped to 1 so a
// depth-1 volume stays all zero instead of dividing by zero.
func GradientVolume(w, h, d int, t ElementType) *Volume {
	vol := NewVolume(w, h, d, t)
	div := vol.D - 1
	if div < 1 {
		div = 1
	}
	maxVal := int(t.MaxValue())
	for z := 0; z < vol.D; z++ {
		val := uint16(z * maxVal / div)
		for y := 0; y < vol.H; y++ {
			for x := 0; x < vol.W; x++ {
				vol.Set(x, y, z, val)
			}
		}
	}
	return vol
}

// SphereVolume fills a volume with a radial falloff around the center
// voxel (dim/2 per axis): voxels strictly inside radius get
// (1 - dist/radius) * peak, everything else stays 0. If peak is 0 a
// type-appropriate default is used (255 for uint8, 4095 for uint16).
func SphereVolume(w, h, d int, t ElementType, radius float64, peak uint16) *Volume {
	vol := NewVolume(w, h, d, t)
	if radius <= 0 {
		return vol
	}
	if peak == 0 {
		if t == Uint16 {
			peak = 4095
		} else {
			peak = 255
		}
	}
	if peak > t.MaxValue() {
		peak = t.MaxValue()
	}
	cx := float64(vol.W / 2)
	cy := float64(vol.H / 2)
	cz := float64(vol.D / 2)
	for z := 0; z < vol.D; z++ {
		for y := 0; y < vol.H; y++ {
			for x := 0; x < vol.W; x++ {
				dx := float64(x) - cx
				dy := float64(y) - cy
				dz := float64(z) - cz
				dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
				if dist < radius {
					vol.Set(x, y, z, uint16((1-dist/radius)*float64(peak)))
				}
			}
		}
	}
	return vol
}

// CheckerVolume fills a volume with a 3D checkerboard: each axis is
// partitioned into blocks of blockSize voxels and a voxel is set to the
// type maximum when the parity of its block coordinates sum is even.
// Partial blocks at the boundary follow the same parity rule.
func CheckerVolume(w, h, d int, t ElementType, blockSize int) *Volume {
	vol := NewVolume(w, h, d, t)
	if blockSize < 1 {
		blockSize = 1
	}
	maxVal := t.MaxValue()
	for z := 0; z < vol.D; z++ {
		bz := (z / blockSize) % 2
		for y := 0; y < vol.H; y++ {
			by := (y / blockSize) % 2
			for x := 0; x < vol.W; x++ {
				bx := (x / blockSize) % 2
				if (bx+by+bz)%2 == 0 {
					vol.Set(x, y, z, maxVal)
				}
			}
		}
	}
	return vol
}
