package cpuid

import (
	"fmt"
	"runtime"
)

const (
	LEAF_VENDOR  = uint32(0) // Maximum basic leaf and vendor identifier.
	LEAF_FEATURE = uint32(1) // Signature and feature flags.
)

// Regs are the registers produced by one CPUID execution.
type Regs struct {
	Eax uint32
	Ebx uint32
	Ecx uint32
	Edx uint32
}

func (r Regs) String() string {
	return fmt.Sprintf("eax=%08x ebx=%08x ecx=%08x edx=%08x", r.Eax, r.Ebx, r.Ecx, r.Edx)
}

// Querier executes the identification instruction.
type Querier interface {
	// Query executes CPUID exactly once with eax=leaf and ecx=subleaf.
	Query(leaf, subleaf uint32) Regs
}

// Native returns the Querier for the running processor.
func Native() (q Querier, err error) {
	if !supported {
		err = ErrUnsupportedPlatform(runtime.GOARCH)
		return
	}

	q = hardware{}
	return
}

// hardware queries the executing processor. It carries no state, and
// is safe for concurrent use. Only Native hands it out, on 386 and amd64.
type hardware struct{}

var _ Querier = hardware{}

func (hardware) Query(leaf, subleaf uint32) (regs Regs) {
	regs.Eax, regs.Ebx, regs.Ecx, regs.Edx = cpuid(leaf, subleaf)
	return
}
