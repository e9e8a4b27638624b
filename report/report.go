// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package report gathers the decoded identification of a processor, and
// renders it as text.
package report

import (
	"io"
	"strings"

	"github.com/ezrec/cpuinfo/cpuid"
	"github.com/ezrec/cpuinfo/decode"
	"github.com/ezrec/cpuinfo/translate"
)

// VENDOR_INVALID replaces a vendor identifier that failed to decode.
const VENDOR_INVALID = "<invalid>"

// Report is the decoded identification of one logical processor.
type Report struct {
	Vendor         string            // Vendor identifier, or VENDOR_INVALID.
	VendorErr      error             // Set if the vendor failed to decode.
	Family         uint32            // Processor family.
	ExtendedFamily uint32            // Processor extended family.
	Stepping       uint32            // Processor stepping.
	Features       decode.FeatureSet // Leaf 1 feature flags.

	vendorRegs  cpuid.Regs
	featureRegs cpuid.Regs
}

// Collect queries leaves 0 and 1 once each, and decodes them.
//
// If the vendor identifier is invalid, the report is still returned with
// every other field decoded, along with the *decode.ErrDecode.
func Collect(q cpuid.Querier) (rep *Report, err error) {
	rep = &Report{
		vendorRegs:  q.Query(cpuid.LEAF_VENDOR, 0),
		featureRegs: q.Query(cpuid.LEAF_FEATURE, 0),
	}

	rep.Family = decode.Family(rep.featureRegs)
	rep.ExtendedFamily = decode.ExtendedFamily(rep.featureRegs)
	rep.Stepping = decode.Stepping(rep.featureRegs)
	rep.Features = decode.Features(rep.featureRegs)

	rep.Vendor, err = decode.Vendor(rep.vendorRegs)
	if err != nil {
		rep.Vendor = VENDOR_INVALID
		rep.VendorErr = err
	}

	return
}

// Raw returns the registers the report was decoded from.
func (rep *Report) Raw() (vendor cpuid.Regs, feature cpuid.Regs) {
	return rep.vendorRegs, rep.featureRegs
}

// Write renders the report.
func (rep *Report) Write(w io.Writer) (err error) {
	lines := [](struct {
		format string
		value  any
	}){
		{"CPU Brand: %v\n", rep.Vendor},
		{"Family: %v\n", rep.Family},
		{"Extended Family: %v\n", rep.ExtendedFamily},
		{"Stepping: %v\n", rep.Stepping},
		{"Features: %v\n", strings.Join(rep.Features.Names(), ", ")},
	}

	for _, line := range lines {
		_, err = translate.Fprintf(w, line.format, line.value)
		if err != nil {
			return
		}
	}

	return
}

// String renders the report, without the trailing newline.
func (rep *Report) String() string {
	var sb strings.Builder
	_ = rep.Write(&sb)
	return strings.TrimSuffix(sb.String(), "\n")
}
