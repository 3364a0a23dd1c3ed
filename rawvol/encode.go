package rawvol

import (
	"encoding/binary"
	"fmt"
)

// Serialize encodes the volume as a flat little-endian byte sequence
// in traversal order (z slowest, y, x fastest). There is no header;
// the sidecar carries everything a reader needs.
func (v *Volume) Serialize() []byte {
	if v.Type == Uint16 {
		out := make([]byte, 2*len(v.data))
		for i, val := range v.data {
			binary.LittleEndian.PutUint16(out[2*i:], val)
		}
		return out
	}
	out := make([]byte, len(v.data))
	for i, val := range v.data {
		out[i] = byte(val & 0xFF)
	}
	return out
}

// ParseVolume reconstructs a volume from raw bytes and its sidecar.
func ParseVolume(m Metadata, data []byte) (*Volume, error) {
	t, err := m.ElementType()
	if err != nil {
		return nil, err
	}
	want, err := m.ByteSize()
	if err != nil {
		return nil, err
	}
	if len(data) != want {
		return nil, fmt.Errorf("raw size %d does not match metadata (expected %d)", len(data), want)
	}
	vol := NewVolume(m.Dimensions[0], m.Dimensions[1], m.Dimensions[2], t)
	if t == Uint16 {
		for i := range vol.data {
			vol.data[i] = binary.LittleEndian.Uint16(data[2*i:])
		}
	} else {
		for i := range vol.data {
			vol.data[i] = uint16(data[i])
		}
	}
	return vol, nil
}
