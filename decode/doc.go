// Package decode interprets the registers of identification leaves 0
// and 1.
//
// Leaf 0 yields the vendor identifier. Leaf 1 yields the processor
// signature (stepping, family, extended family) in eax, and the feature
// flags in ecx and edx. Every decoder is a pure function of its input
// registers.
package decode
