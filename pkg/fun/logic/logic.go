package logic

import (
	"fmt"
	"reflect"

	"github.com/ib-77/funk/pkg/fun"
)

// AllPass reports whether every predicate in the slice passes for the value.
var AllPass = fun.CurryN(2, func(args ...any) any {
	v := args[1]
	for _, p := range predicates(args[0]) {
		if !fun.Truthy(fun.Apply(p, v)) {
			return false
		}
	}
	return true
})

// AnyPass reports whether at least one predicate passes for the value.
var AnyPass = fun.CurryN(2, func(args ...any) any {
	v := args[1]
	for _, p := range predicates(args[0]) {
		if fun.Truthy(fun.Apply(p, v)) {
			return true
		}
	}
	return false
})

// NonePass reports whether no predicate passes for the value.
var NonePass = fun.CurryN(2, func(args ...any) any {
	return !AnyPass(args[0], args[1]).(bool)
})

// Both reports whether both predicates pass for the value.
var Both = fun.CurryN(3, func(args ...any) any {
	return fun.Truthy(fun.Apply(args[0], args[2])) &&
		fun.Truthy(fun.Apply(args[1], args[2]))
})

// Either reports whether at least one of the two predicates passes.
var Either = fun.CurryN(3, func(args ...any) any {
	return fun.Truthy(fun.Apply(args[0], args[2])) ||
		fun.Truthy(fun.Apply(args[1], args[2]))
})

// Complement inverts a predicate's truthiness for the value.
var Complement = fun.CurryN(2, func(args ...any) any {
	return !fun.Truthy(fun.Apply(args[0], args[1]))
})

// IfElse applies test to the value and routes the value itself through
// onTrue or onFalse.
var IfElse = fun.CurryN(4, func(args ...any) any {
	test, onTrue, onFalse, v := args[0], args[1], args[2], args[3]
	if fun.Truthy(fun.Apply(test, v)) {
		return fun.Apply(onTrue, v)
	}
	return fun.Apply(onFalse, v)
})

// When applies onTrue to the value when test passes, otherwise yields the
// value unchanged.
var When = fun.CurryN(3, func(args ...any) any {
	test, onTrue, v := args[0], args[1], args[2]
	if fun.Truthy(fun.Apply(test, v)) {
		return fun.Apply(onTrue, v)
	}
	return v
})

// Unless applies onFalse to the value when test fails, otherwise yields the
// value unchanged.
var Unless = fun.CurryN(3, func(args ...any) any {
	test, onFalse, v := args[0], args[1], args[2]
	if fun.Truthy(fun.Apply(test, v)) {
		return v
	}
	return fun.Apply(onFalse, v)
})

// TryCatch invokes tryer(v); a panic raised inside it is captured,
// converted to an error and handed to catcher(err, v), whose result becomes
// the overall result. The failure is never re-raised.
var TryCatch = fun.CurryN(3, func(args ...any) any {
	return tryCatch(args[0], args[1], args[2])
})

func tryCatch(tryer, catcher, v any) (out any) {
	defer func() {
		if r := recover(); r != nil {
			out = fun.Apply(catcher, asError(r), v)
		}
	}()
	return fun.Apply(tryer, v)
}

func asError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("%v", r)
}

// predicates widens any slice of callables into []any so AllPass and
// friends can accept []fun.Fn, []func(any) bool or a mixed []any.
func predicates(v any) []any {
	if ps, ok := v.([]any); ok {
		return ps
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		panic(fmt.Sprintf("logic: %T is not a predicate slice", v))
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
