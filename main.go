package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/medvoxel/rawvol/utils"
)

func usage() {
	fmt.Println("Usage: rawvoltool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  gensuite [output_dir]                          (generate the default test-data suite)")
	fmt.Println("  gensuite -m manifest.yaml                      (generate volumes declared in a YAML manifest)")
	fmt.Println("  gengradient <w> <h> <d> <uint8|uint16> output.raw")
	fmt.Println("  gensphere <w> <h> <d> <uint8|uint16> <radius> output.raw")
	fmt.Println("  genchecker <w> <h> <d> <uint8|uint16> <block> output.raw")
	fmt.Println("  pack output.rvpack input1.raw [input2.raw ...] (bundle volumes, zstd compressed)")
	fmt.Println("  unpack input.rvpack output_dir                 (expand a pack into raw+json pairs)")
	fmt.Println("  vol2glb input.raw output.glb <threshold>       (export thresholded surface as GLB)")
	fmt.Println("  info input.raw                                 (print sidecar and verify size)")
}

func fatal(err error) {
	fmt.Println(color.RedString("Error:"), err)
	os.Exit(1)
}

func scanDims(args []string) (w, h, d int, err error) {
	if _, err = fmt.Sscan(args[0], &w); err != nil {
		return
	}
	if _, err = fmt.Sscan(args[1], &h); err != nil {
		return
	}
	_, err = fmt.Sscan(args[2], &d)
	return
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "gensuite":
		switch {
		case len(os.Args) == 2:
			if err := utils.RunGenSuite(""); err != nil {
				fatal(err)
			}
		case len(os.Args) == 3:
			if err := utils.RunGenSuite(os.Args[2]); err != nil {
				fatal(err)
			}
		case len(os.Args) == 4 && os.Args[2] == "-m":
			if err := utils.RunGenSuiteManifest(os.Args[3]); err != nil {
				fatal(err)
			}
		default:
			usage()
			os.Exit(1)
		}
	case "gengradient":
		if len(os.Args) != 7 {
			usage()
			os.Exit(1)
		}
		w, h, d, err := scanDims(os.Args[2:5])
		if err != nil {
			fatal(err)
		}
		if err := utils.RunGenGradient(w, h, d, os.Args[5], os.Args[6]); err != nil {
			fatal(err)
		}
	case "gensphere":
		if len(os.Args) != 8 {
			usage()
			os.Exit(1)
		}
		w, h, d, err := scanDims(os.Args[2:5])
		if err != nil {
			fatal(err)
		}
		var radius float64
		if _, err := fmt.Sscan(os.Args[6], &radius); err != nil {
			fatal(err)
		}
		if err := utils.RunGenSphere(w, h, d, os.Args[5], radius, 0, os.Args[7]); err != nil {
			fatal(err)
		}
	case "genchecker":
		if len(os.Args) != 8 {
			usage()
			os.Exit(1)
		}
		w, h, d, err := scanDims(os.Args[2:5])
		if err != nil {
			fatal(err)
		}
		var block int
		if _, err := fmt.Sscan(os.Args[6], &block); err != nil {
			fatal(err)
		}
		if err := utils.RunGenChecker(w, h, d, os.Args[5], block, os.Args[7]); err != nil {
			fatal(err)
		}
	case "pack":
		if len(os.Args) < 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunPack(os.Args[3:], os.Args[2], "zstd"); err != nil {
			fatal(err)
		}
	case "unpack":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunUnpack(os.Args[2], os.Args[3]); err != nil {
			fatal(err)
		}
	case "vol2glb":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		var threshold uint16
		if _, err := fmt.Sscan(os.Args[4], &threshold); err != nil {
			fatal(err)
		}
		if err := utils.RunVol2GLB(os.Args[2], os.Args[3], threshold); err != nil {
			fatal(err)
		}
	case "info":
		if len(os.Args) != 3 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunInfo(os.Args[2]); err != nil {
			fatal(err)
		}
	default:
		usage()
		os.Exit(1)
	}

	fmt.Println("Operation completed!")
}
