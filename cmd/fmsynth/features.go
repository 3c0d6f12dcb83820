package main

import (
	"fmt"
	"runtime"

	"github.com/intuitionamiga/fmsynth"
)

func printFeatures() {
	fmt.Printf("fmsynth %s\n", Version)
	fmt.Printf("  Go version: %s\n", runtime.Version())
	fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println()
	fmt.Println("Compiled features:")

	features := fmsynth.CompiledFeatures()
	for _, f := range features {
		fmt.Printf("  %s\n", f)
	}
	if len(features) == 0 {
		fmt.Println("  (none)")
	}
}
