package utils

import (
	"fmt"
	"os"

	xxhash "github.com/cespare/xxhash/v2"

	"github.com/medvoxel/rawvol/rawvol"
)

// RunInfo prints a volume's sidecar fields and verifies that the raw
// file size matches what the metadata implies.
func RunInfo(rawPath string) error {
	meta, err := rawvol.LoadMetadata(rawvol.SidecarPath(rawPath))
	if err != nil {
		return err
	}
	data, err := os.ReadFile(rawPath)
	if err != nil {
		return err
	}
	want, err := meta.ByteSize()
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", rawPath)
	fmt.Printf("  dimensions:  %dx%dx%d (%d voxels)\n",
		meta.Dimensions[0], meta.Dimensions[1], meta.Dimensions[2],
		meta.Dimensions[0]*meta.Dimensions[1]*meta.Dimensions[2])
	fmt.Printf("  dataType:    %s\n", meta.DataType)
	fmt.Printf("  byteOrder:   %s\n", meta.ByteOrder)
	fmt.Printf("  spacing:     %g x %g x %g\n", meta.Spacing[0], meta.Spacing[1], meta.Spacing[2])
	fmt.Printf("  description: %s\n", meta.Description)
	fmt.Printf("  size:        %d bytes\n", len(data))
	fmt.Printf("  xxhash64:    %016x\n", xxhash.Sum64(data))

	if len(data) != want {
		return fmt.Errorf("size mismatch: metadata implies %d bytes, file has %d", want, len(data))
	}
	fmt.Printf("%s size matches metadata\n", okMark("[OK]"))
	return nil
}
