package decode

import (
	"iter"
	"maps"

	"github.com/ezrec/cpuinfo/cpuid"
	"github.com/ezrec/cpuinfo/internal"
)

// Feature is a capability reported by leaf 1 of the identification
// instruction. Features are declared in report order.
type Feature int

//go:generate go tool stringer -linecomment -type=Feature
const (
	FEATURE_ACPI       = Feature(0)  // ACPI
	FEATURE_AES        = Feature(1)  // AES
	FEATURE_APIC       = Feature(2)  // APIC
	FEATURE_AVX        = Feature(3)  // AVX
	FEATURE_CMPXCHG16B = Feature(4)  // CMPXCHG16B
	FEATURE_CX8        = Feature(5)  // CX8
	FEATURE_F16C       = Feature(6)  // F16C
	FEATURE_FMA        = Feature(7)  // FMA
	FEATURE_FPU        = Feature(8)  // FPU
	FEATURE_FXSAVE     = Feature(9)  // FXSAVE
	FEATURE_HYPERVISOR = Feature(10) // HYPERVISOR
	FEATURE_MCE        = Feature(11) // MCE
	FEATURE_MMX        = Feature(12) // MMX
	FEATURE_MOVBE      = Feature(13) // MOVBE
	FEATURE_MSR        = Feature(14) // MSR
	FEATURE_MTRR       = Feature(15) // MTRR
	FEATURE_OSXSAVE    = Feature(16) // OSXSAVE
	FEATURE_PAE        = Feature(17) // PAE
	FEATURE_PCLMUL     = Feature(18) // PCLMUL
	FEATURE_PGE        = Feature(19) // PGE
	FEATURE_POPCNT     = Feature(20) // POPCNT
	FEATURE_PSE        = Feature(21) // PSE
	FEATURE_RDRND      = Feature(22) // RDRND
	FEATURE_SEP        = Feature(23) // SEP
	FEATURE_SSE        = Feature(24) // SSE
	FEATURE_SSE2       = Feature(25) // SSE2
	FEATURE_SSE3       = Feature(26) // SSE3
	FEATURE_SSE4_1     = Feature(27) // SSE4.1
	FEATURE_SSE4_2     = Feature(28) // SSE4.2
	FEATURE_SSSE3      = Feature(29) // SSSE3
	FEATURE_TM         = Feature(30) // TM
	FEATURE_TSC        = Feature(31) // TSC
	FEATURE_VME        = Feature(32) // VME
	FEATURE_XSAVE      = Feature(33) // XSAVE
)

// FEATURE_COUNT is the number of known features.
const FEATURE_COUNT = 34

// Bit position of each feature in a FeatureSet. ecx occupies bits 0-31
// and edx bits 32-63.
var featureBit = [FEATURE_COUNT]uint{
	FEATURE_ACPI:       54, // edx 22
	FEATURE_AES:        25, // ecx 25
	FEATURE_APIC:       41, // edx 9
	FEATURE_AVX:        28, // ecx 28
	FEATURE_CMPXCHG16B: 13, // ecx 13
	FEATURE_CX8:        40, // edx 8
	FEATURE_F16C:       29, // ecx 29
	FEATURE_FMA:        12, // ecx 12
	FEATURE_FPU:        32, // edx 0
	FEATURE_FXSAVE:     56, // edx 24
	FEATURE_HYPERVISOR: 31, // ecx 31
	FEATURE_MCE:        39, // edx 7
	FEATURE_MMX:        55, // edx 23
	FEATURE_MOVBE:      22, // ecx 22
	FEATURE_MSR:        37, // edx 5
	FEATURE_MTRR:       44, // edx 12
	FEATURE_OSXSAVE:    27, // ecx 27
	FEATURE_PAE:        38, // edx 6
	FEATURE_PCLMUL:     1,  // ecx 1
	FEATURE_PGE:        45, // edx 13
	FEATURE_POPCNT:     23, // ecx 23
	FEATURE_PSE:        35, // edx 3
	FEATURE_RDRND:      30, // ecx 30
	FEATURE_SEP:        43, // edx 11
	FEATURE_SSE:        57, // edx 25
	FEATURE_SSE2:       58, // edx 26
	FEATURE_SSE3:       0,  // ecx 0
	FEATURE_SSE4_1:     19, // ecx 19
	FEATURE_SSE4_2:     20, // ecx 20
	FEATURE_SSSE3:      9,  // ecx 9
	FEATURE_TM:         61, // edx 29
	FEATURE_TSC:        36, // edx 4
	FEATURE_VME:        33, // edx 1
	FEATURE_XSAVE:      26, // ecx 26
}

// Alternate names accepted by ParseFeature.
var featureAlias = map[string]Feature{
	"CMPXCHG8B": FEATURE_CX8,
}

// Bit returns the position of the feature in a FeatureSet.
func (f Feature) Bit() uint {
	return featureBit[f]
}

// Mask returns the FeatureSet holding only this feature.
func (f Feature) Mask() FeatureSet {
	return FeatureSet(1) << featureBit[f]
}

// AllFeatures iterates over every known feature, in report order.
func AllFeatures() iter.Seq[Feature] {
	return func(yield func(Feature) bool) {
		for f := range Feature(FEATURE_COUNT) {
			if !yield(f) {
				return
			}
		}
	}
}

// featureNames iterates over the canonical names, then the aliases.
func featureNames() iter.Seq2[string, Feature] {
	canonical := func(yield func(string, Feature) bool) {
		for f := range AllFeatures() {
			if !yield(f.String(), f) {
				return
			}
		}
	}
	return internal.IterSeq2Concat(canonical, maps.All(featureAlias))
}

// ParseFeature looks up a feature by its canonical name or an alias.
func ParseFeature(name string) (f Feature, ok bool) {
	for key, value := range featureNames() {
		if key == name {
			return value, true
		}
	}
	return
}

// FeatureSet is the leaf 1 edx:ecx register pair.
type FeatureSet uint64

// Features decodes the capability bits of a leaf 1 query.
func Features(regs cpuid.Regs) FeatureSet {
	return FeatureSet(uint64(regs.Edx)<<32 | uint64(regs.Ecx))
}

// Has is true if the feature's bit is set.
func (fs FeatureSet) Has(f Feature) bool {
	return fs&f.Mask() != 0
}

// All iterates over the present features, in report order.
func (fs FeatureSet) All() iter.Seq[Feature] {
	return internal.IterFilter(AllFeatures(), fs.Has)
}

// Names lists the names of the present features, in report order.
func (fs FeatureSet) Names() (names []string) {
	names = []string{}
	for f := range fs.All() {
		names = append(names, f.String())
	}
	return
}
