package cpuid

import (
	"errors"

	"github.com/ezrec/cpuinfo/translate"
)

var f = translate.From

var (
	// ErrUnsupported is matched by every ErrUnsupportedPlatform.
	ErrUnsupported = errors.New(f("identification instruction unsupported"))
)

// ErrUnsupportedPlatform reports a GOARCH without the identification
// instruction.
type ErrUnsupportedPlatform string

func (err ErrUnsupportedPlatform) Error() string {
	return f("%v: %v", string(err), ErrUnsupported)
}

func (err ErrUnsupportedPlatform) Is(target error) (ok bool) {
	if target == ErrUnsupported {
		return true
	}
	_, ok = target.(ErrUnsupportedPlatform)
	return
}
