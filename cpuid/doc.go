// Package cpuid issues the processor identification instruction.
//
// A Querier executes CPUID once per call for a (leaf, subleaf) pair and
// returns the four output registers verbatim. Results describe the
// logical processor that happened to execute the call; on heterogeneous
// or multi-socket hosts they are not representative of the whole system.
//
// Native returns the hardware Querier on 386 and amd64, and
// ErrUnsupportedPlatform everywhere else. The hardware Querier is not
// reachable any other way. Canned substitutes fixed
// register values for tests.
package cpuid
