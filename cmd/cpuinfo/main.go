// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/cpuinfo/cpuid"
)

const (
	EXIT_FAILURE = 1 // Unsupported platform, bad arguments, or invalid vendor.
	EXIT_MISSING = 2 // The -require expression was false.
)

func main() {
	var require string
	var verbose bool

	flag.StringVar(&require, "require", "", "Feature expression that must hold, e.g. 'AES and SSE4_2'")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	os.Exit(run(os.Stdout, cpuid.Native, require, verbose))
}
