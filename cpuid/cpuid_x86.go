//go:build 386 || amd64

package cpuid

const supported = true

// cpuid executes the CPUID instruction with the given EAX and ECX inputs.
// Defined in cpuid_386.s and cpuid_amd64.s
func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)
