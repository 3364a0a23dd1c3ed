package rawvol

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metadata is the JSON sidecar the viewer reads next to a .raw file.
// Field names and shapes are part of the consumer contract and must
// not change.
type Metadata struct {
	Dimensions  [3]int     `json:"dimensions"`
	DataType    string     `json:"dataType"`
	ByteOrder   string     `json:"byteOrder"`
	Spacing     [3]float64 `json:"spacing"`
	Description string     `json:"description"`
}

// MetadataFor builds a sidecar describing an in-memory volume.
func MetadataFor(vol *Volume, spacing [3]float64, description string) Metadata {
	return Metadata{
		Dimensions:  [3]int{vol.W, vol.H, vol.D},
		DataType:    vol.Type.String(),
		ByteOrder:   "little-endian",
		Spacing:     spacing,
		Description: description,
	}
}

// ElementType resolves the sidecar's dataType tag.
func (m Metadata) ElementType() (ElementType, error) {
	return ParseElementType(m.DataType)
}

// ByteSize returns the raw file size the sidecar implies.
func (m Metadata) ByteSize() (int, error) {
	t, err := m.ElementType()
	if err != nil {
		return 0, err
	}
	for _, dim := range m.Dimensions {
		if dim < 1 {
			return 0, fmt.Errorf("invalid dimension %d", dim)
		}
	}
	return m.Dimensions[0] * m.Dimensions[1] * m.Dimensions[2] * t.ByteSize(), nil
}

// WriteMetadata saves the sidecar with 2-space indentation.
func WriteMetadata(m Metadata, filename string) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, append(b, '\n'), 0644)
}

// LoadMetadata reads and validates a sidecar file.
func LoadMetadata(filename string) (Metadata, error) {
	var m Metadata
	b, err := os.ReadFile(filename)
	if err != nil {
		return m, err
	}
	if err := json.Unmarshal(b, &m); err != nil {
		return m, fmt.Errorf("failed to parse metadata %s: %w", filename, err)
	}
	if _, err := m.ByteSize(); err != nil {
		return m, fmt.Errorf("invalid metadata %s: %w", filename, err)
	}
	return m, nil
}
