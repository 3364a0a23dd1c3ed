package utils

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/medvoxel/rawvol/rawvol"
)

var okMark = color.New(color.FgGreen).SprintFunc()

func reportSaved(rawPath string, vol *rawvol.Volume) {
	fmt.Printf("%s Created %s (%d bytes)\n", okMark("[OK]"), rawPath, vol.Len()*vol.Type.ByteSize())
	fmt.Printf("%s Created %s\n", okMark("[OK]"), rawvol.SidecarPath(rawPath))
}

func parseType(tag string) (rawvol.ElementType, error) {
	t, err := rawvol.ParseElementType(tag)
	if err != nil {
		return 0, fmt.Errorf("%s (use uint8 or uint16)", err)
	}
	return t, nil
}

// RunGenGradient writes a single gradient volume and its sidecar.
func RunGenGradient(w, h, d int, typeTag, outPath string) error {
	t, err := parseType(typeTag)
	if err != nil {
		return err
	}
	fmt.Printf("Creating %dx%dx%d %s gradient volume...\n", w, h, d, t)
	vol := rawvol.GradientVolume(w, h, d, t)
	desc := fmt.Sprintf("Gradient test volume (%s)", t)
	if err := rawvol.SaveVolume(vol, outPath, [3]float64{1, 1, 1}, desc); err != nil {
		return err
	}
	reportSaved(outPath, vol)
	return nil
}

// RunGenSphere writes a single sphere-falloff volume and its sidecar.
// peak 0 selects the type default (255 for uint8, 4095 for uint16).
func RunGenSphere(w, h, d int, typeTag string, radius float64, peak uint16, outPath string) error {
	t, err := parseType(typeTag)
	if err != nil {
		return err
	}
	fmt.Printf("Creating %dx%dx%d %s sphere volume (radius %g)...\n", w, h, d, t, radius)
	vol := rawvol.SphereVolume(w, h, d, t, radius, peak)
	desc := fmt.Sprintf("Sphere test volume (%s)", t)
	if err := rawvol.SaveVolume(vol, outPath, [3]float64{1, 1, 1}, desc); err != nil {
		return err
	}
	reportSaved(outPath, vol)
	return nil
}

// RunGenChecker writes a single 3D checkerboard volume and its sidecar.
func RunGenChecker(w, h, d int, typeTag string, blockSize int, outPath string) error {
	t, err := parseType(typeTag)
	if err != nil {
		return err
	}
	fmt.Printf("Creating %dx%dx%d %s checkerboard volume (block %d)...\n", w, h, d, t, blockSize)
	vol := rawvol.CheckerVolume(w, h, d, t, blockSize)
	desc := fmt.Sprintf("3D checkerboard pattern (%dx%dx%d blocks)", blockSize, blockSize, blockSize)
	if err := rawvol.SaveVolume(vol, outPath, [3]float64{1, 1, 1}, desc); err != nil {
		return err
	}
	reportSaved(outPath, vol)
	return nil
}
