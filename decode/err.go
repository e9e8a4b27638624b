package decode

import (
	"errors"

	"github.com/ezrec/cpuinfo/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrVendorText = errors.New(f("vendor text invalid"))
)

// ErrDecode locates the first invalid byte of a decoded field.
type ErrDecode struct {
	Field  string
	Data   []byte
	Offset int
	Err    error
}

func (err *ErrDecode) Error() string {
	if err.Offset < 0 || err.Offset >= len(err.Data) {
		return f("%v %q byte %d: %v", err.Field, err.Data, err.Offset, err.Err)
	}
	return f("%v %q byte %d (0x%02x): %v", err.Field, err.Data, err.Offset, err.Data[err.Offset], err.Err)
}

func (err *ErrDecode) Unwrap() error {
	return err.Err
}
