package rawvol

import (
	"fmt"
	"os"
	"strings"
)

// SaveVolume writes the raw blob and its sidecar next to each other.
// rawPath should end in .raw; the sidecar gets the same base with .json.
func SaveVolume(vol *Volume, rawPath string, spacing [3]float64, description string) error {
	if err := os.WriteFile(rawPath, vol.Serialize(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rawPath, err)
	}
	meta := MetadataFor(vol, spacing, description)
	metaPath := SidecarPath(rawPath)
	if err := WriteMetadata(meta, metaPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", metaPath, err)
	}
	return nil
}

// LoadVolume reads a raw+sidecar pair back into memory.
func LoadVolume(rawPath string) (*Volume, Metadata, error) {
	meta, err := LoadMetadata(SidecarPath(rawPath))
	if err != nil {
		return nil, Metadata{}, err
	}
	data, err := os.ReadFile(rawPath)
	if err != nil {
		return nil, Metadata{}, err
	}
	vol, err := ParseVolume(meta, data)
	if err != nil {
		return nil, Metadata{}, fmt.Errorf("%s: %w", rawPath, err)
	}
	return vol, meta, nil
}

// SidecarPath maps a .raw path to its .json sidecar path.
func SidecarPath(rawPath string) string {
	if strings.HasSuffix(rawPath, ".raw") {
		return strings.TrimSuffix(rawPath, ".raw") + ".json"
	}
	return rawPath + ".json"
}
