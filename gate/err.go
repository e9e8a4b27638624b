package gate

import (
	"errors"

	"github.com/ezrec/cpuinfo/translate"
)

var f = translate.From

var (
	// Gate errors
	ErrResultType = errors.New(f("result is not a bool"))
)

// ErrFeatureUnknown is a has() argument that names no feature.
type ErrFeatureUnknown string

func (err ErrFeatureUnknown) Error() string {
	return f("feature %q unknown", string(err))
}

// ErrExpression is a gate expression that could not be evaluated.
type ErrExpression struct {
	Expr string
	Err  error
}

func (err *ErrExpression) Error() string {
	return f("gate %q: %v", err.Expr, err.Err)
}

func (err *ErrExpression) Unwrap() error {
	return err.Err
}
