package main

import (
	"io"
	"log"

	"github.com/ezrec/cpuinfo/cpuid"
	"github.com/ezrec/cpuinfo/gate"
	"github.com/ezrec/cpuinfo/report"
)

// run performs the query, decode and report sequence for the querier
// returned by native, and returns the exit status.
func run(w io.Writer, native func() (cpuid.Querier, error), require string, verbose bool) int {
	q, err := native()
	if err != nil {
		log.Printf("%v", err)
		return EXIT_FAILURE
	}

	rep, vendorErr := report.Collect(q)

	if verbose {
		vendor, feature := rep.Raw()
		log.Printf("leaf 0: %v", vendor)
		log.Printf("leaf 1: %v", feature)
	}

	err = rep.Write(w)
	if err != nil {
		log.Printf("%v", err)
		return EXIT_FAILURE
	}

	if vendorErr != nil {
		log.Printf("%v", vendorErr)
		return EXIT_FAILURE
	}

	if len(require) != 0 {
		ok, err := gate.Eval(require, rep.Features)
		if err != nil {
			log.Printf("%v", err)
			return EXIT_FAILURE
		}
		if !ok {
			log.Printf("%v: not satisfied", require)
			return EXIT_MISSING
		}
	}

	return 0
}
