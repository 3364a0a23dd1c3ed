package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/medvoxel/rawvol/rawvol"
)

// VolumeSpec is one entry in a suite manifest.
type VolumeSpec struct {
	Name        string     `yaml:"name"`
	Pattern     string     `yaml:"pattern"` // gradient | sphere | checker
	Dimensions  [3]int     `yaml:"dimensions"`
	DataType    string     `yaml:"dataType"`
	Spacing     [3]float64 `yaml:"spacing,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Radius      float64    `yaml:"radius,omitempty"`    // sphere only
	Peak        uint16     `yaml:"peak,omitempty"`      // sphere only, 0 = type default
	BlockSize   int        `yaml:"blockSize,omitempty"` // checker only
}

// Manifest declares a set of volumes to synthesize into one directory.
type Manifest struct {
	OutputDir string       `yaml:"outputDir,omitempty"`
	Volumes   []VolumeSpec `yaml:"volumes"`
}

// defaultSuite mirrors the fixed outputs the viewer's test instructions
// expect, so a no-argument run still produces the familiar files.
func defaultSuite() Manifest {
	return Manifest{
		OutputDir: "test-data",
		Volumes: []VolumeSpec{
			{Name: "simple_test", Pattern: "gradient", Dimensions: [3]int{16, 16, 16}, DataType: "uint8",
				Description: "Simple 16x16x16 gradient test volume"},
			{Name: "checker_test", Pattern: "checker", Dimensions: [3]int{32, 32, 32}, DataType: "uint8",
				BlockSize: 8, Description: "32x32x32 checkerboard pattern"},
			{Name: "test_volume_uint8", Pattern: "gradient", Dimensions: [3]int{64, 64, 64}, DataType: "uint8",
				Description: "Test gradient volume (uint8)"},
			{Name: "test_volume_uint16", Pattern: "sphere", Dimensions: [3]int{32, 32, 32}, DataType: "uint16",
				Radius: 12, Peak: 4095, Description: "Test sphere volume (uint16)"},
			{Name: "test_volume_checker", Pattern: "checker", Dimensions: [3]int{64, 64, 64}, DataType: "uint8",
				BlockSize: 8, Description: "3D checkerboard pattern"},
		},
	}
}

func synthesize(spec VolumeSpec) (*rawvol.Volume, error) {
	t, err := parseType(spec.DataType)
	if err != nil {
		return nil, fmt.Errorf("volume %s: %w", spec.Name, err)
	}
	w, h, d := spec.Dimensions[0], spec.Dimensions[1], spec.Dimensions[2]
	switch spec.Pattern {
	case "gradient":
		return rawvol.GradientVolume(w, h, d, t), nil
	case "sphere":
		radius := spec.Radius
		if radius <= 0 {
			radius = float64(minDim(w, h, d)) * 0.375
		}
		return rawvol.SphereVolume(w, h, d, t, radius, spec.Peak), nil
	case "checker":
		block := spec.BlockSize
		if block < 1 {
			block = 8
		}
		return rawvol.CheckerVolume(w, h, d, t, block), nil
	}
	return nil, fmt.Errorf("volume %s: unknown pattern %q", spec.Name, spec.Pattern)
}

func minDim(w, h, d int) int {
	m := w
	if h < m {
		m = h
	}
	if d < m {
		m = d
	}
	return m
}

func runManifest(m Manifest) error {
	if len(m.Volumes) == 0 {
		return fmt.Errorf("manifest declares no volumes")
	}
	outDir := m.OutputDir
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	for i, spec := range m.Volumes {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("volume_%d", i)
		}
		vol, err := synthesize(spec)
		if err != nil {
			return err
		}
		spacing := spec.Spacing
		if spacing == ([3]float64{}) {
			spacing = [3]float64{1, 1, 1}
		}
		desc := spec.Description
		if desc == "" {
			desc = fmt.Sprintf("%s test volume (%s)", spec.Pattern, spec.DataType)
		}
		fmt.Printf("Creating %dx%dx%d %s %s volume...\n",
			vol.W, vol.H, vol.D, spec.DataType, spec.Pattern)
		rawPath := filepath.Join(outDir, spec.Name+".raw")
		if err := rawvol.SaveVolume(vol, rawPath, spacing, desc); err != nil {
			return err
		}
		reportSaved(rawPath, vol)
	}
	fmt.Println("\nTest data generation complete!")
	return nil
}

// RunGenSuite generates the built-in default suite into outDir
// (falling back to test-data/ when outDir is empty).
func RunGenSuite(outDir string) error {
	m := defaultSuite()
	if outDir != "" {
		m.OutputDir = outDir
	}
	return runManifest(m)
}

// RunGenSuiteManifest generates all volumes declared in a YAML manifest.
func RunGenSuiteManifest(manifestPath string) error {
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return err
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return fmt.Errorf("failed to parse manifest %s: %w", manifestPath, err)
	}
	return runManifest(m)
}
