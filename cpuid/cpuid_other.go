//go:build !386 && !amd64

package cpuid

import (
	"runtime"
)

const supported = false

func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32) {
	panic(ErrUnsupportedPlatform(runtime.GOARCH))
}
