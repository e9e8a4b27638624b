package decode

import (
	"github.com/ezrec/cpuinfo/cpuid"
)

// Leaf 1 eax signature fields.
const (
	STEPPING_MASK         = 0xf
	STEPPING_SHIFT        = 0
	FAMILY_MASK           = 0xf
	FAMILY_SHIFT          = 8
	EXTENDED_FAMILY_MASK  = 0xff
	EXTENDED_FAMILY_SHIFT = 20
)

// Stepping returns the processor stepping, eax bits 0-3.
func Stepping(regs cpuid.Regs) uint32 {
	return (regs.Eax >> STEPPING_SHIFT) & STEPPING_MASK
}

// Family returns the processor family, eax bits 8-11.
func Family(regs cpuid.Regs) uint32 {
	return (regs.Eax >> FAMILY_SHIFT) & FAMILY_MASK
}

// ExtendedFamily returns the processor extended family, eax bits 20-27.
func ExtendedFamily(regs cpuid.Regs) uint32 {
	return (regs.Eax >> EXTENDED_FAMILY_SHIFT) & EXTENDED_FAMILY_MASK
}
