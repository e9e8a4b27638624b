// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package gate evaluates feature requirements, such as
//
//	AES and (AVX or SSE4_2)
//	has("SSE4.1") and not HYPERVISOR
//
// against a decoded feature set. Expressions are Starlark. Every feature
// is predeclared as a bool, named as in the report with '.' and '-'
// replaced by '_'. The has() builtin takes the report name.
package gate

import (
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/cpuinfo/decode"
)

var identReplacer = strings.NewReplacer(".", "_", "-", "_")

// Identifier returns the predeclared name of a feature.
func Identifier(feature decode.Feature) string {
	return identReplacer.Replace(feature.String())
}

// Predeclared returns the environment of a gate expression.
func Predeclared(set decode.FeatureSet) (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for feature := range decode.AllFeatures() {
		pred[Identifier(feature)] = starlark.Bool(set.Has(feature))
	}

	pred["has"] = starlark.NewBuiltin("has", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (value starlark.Value, err error) {
		var name string
		err = starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &name)
		if err != nil {
			return
		}
		feature, ok := decode.ParseFeature(name)
		if !ok {
			err = ErrFeatureUnknown(name)
			return
		}
		value = starlark.Bool(set.Has(feature))
		return
	})

	return
}

// Eval evaluates expr against set.
func Eval(expr string, set decode.FeatureSet) (ok bool, err error) {
	thread := &starlark.Thread{Name: "gate"}
	opts := &syntax.FileOptions{}

	st_rc, err := starlark.EvalOptions(opts, thread, "gate", expr, Predeclared(set))
	if err != nil {
		err = &ErrExpression{Expr: expr, Err: err}
		return
	}

	st_bool, is_bool := st_rc.(starlark.Bool)
	if !is_bool {
		err = &ErrExpression{Expr: expr, Err: ErrResultType}
		return
	}

	ok = bool(st_bool)
	return
}
