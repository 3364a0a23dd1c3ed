package utils

import (
	"fmt"
	"os"

	"github.com/medvoxel/rawvol/rawvol"
)

// ParseCompression maps a command-line codec name to a pack compression.
func ParseCompression(name string) (rawvol.PackCompression, error) {
	switch name {
	case "", "zstd":
		return rawvol.PackCompZstd, nil
	case "zlib":
		return rawvol.PackCompZlib, nil
	case "none":
		return rawvol.PackCompNone, nil
	}
	return 0, fmt.Errorf("unknown compression %q (use none, zlib or zstd)", name)
}

// RunPack bundles raw+sidecar pairs into a single pack file.
func RunPack(inputs []string, outputFile, compName string) error {
	comp, err := ParseCompression(compName)
	if err != nil {
		return err
	}
	if err := rawvol.CreatePack(inputs, outputFile, comp); err != nil {
		return err
	}
	if fi, err := os.Stat(outputFile); err == nil {
		fmt.Printf("%s Packed %d volumes into %s (%d bytes)\n", okMark("[OK]"), len(inputs), outputFile, fi.Size())
	}
	return nil
}

// RunUnpack expands a pack file back into raw+sidecar pairs.
func RunUnpack(packFile, outDir string) error {
	if err := rawvol.UnpackPack(packFile, outDir); err != nil {
		return err
	}
	fmt.Printf("%s Unpacked %s into %s\n", okMark("[OK]"), packFile, outDir)
	return nil
}
