package rawvol

import "fmt"

// ElementType identifies the scalar storage type of a volume.
type ElementType uint8

const (
	Uint8 ElementType = iota
	Uint16
)

func (t ElementType) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	}
	return fmt.Sprintf("ElementType(%d)", uint8(t))
}

// ByteSize returns the serialized size of one voxel in bytes.
func (t ElementType) ByteSize() int {
	if t == Uint16 {
		return 2
	}
	return 1
}

// MaxValue returns the largest value representable by the type.
func (t ElementType) MaxValue() uint16 {
	if t == Uint16 {
		return 0xFFFF
	}
	return 0xFF
}

// ParseElementType maps a sidecar dataType tag back to an ElementType.
func ParseElementType(tag string) (ElementType, error) {
	switch tag {
	case "uint8":
		return Uint8, nil
	case "uint16":
		return Uint16, nil
	}
	return 0, fmt.Errorf("unsupported dataType %q", tag)
}

// Volume is a dense 3D scalar field. Values live in a linear store with
// x fastest, then y, then z, matching the serialized traversal order.
type Volume struct {
	W, H, D int
	Type    ElementType
	data    []uint16
}

// NewVolume allocates a zero-filled volume. Dimensions are clamped to
// at least 1 so degenerate requests never produce an empty field.
func NewVolume(w, h, d int, t ElementType) *Volume {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if d < 1 {
		d = 1
	}
	return &Volume{W: w, H: h, D: d, Type: t, data: make([]uint16, w*h*d)}
}

// Len returns the total voxel count (W*H*D).
func (v *Volume) Len() int { return len(v.data) }

func (v *Volume) index(x, y, z int) int {
	return x + v.W*(y+v.H*z)
}

// At returns the voxel value at (x, y, z). Indices must be in range.
func (v *Volume) At(x, y, z int) uint16 {
	return v.data[v.index(x, y, z)]
}

// Set stores a voxel value, masked into the element type's range.
func (v *Volume) Set(x, y, z int, val uint16) {
	v.data[v.index(x, y, z)] = val & v.Type.MaxValue()
}
