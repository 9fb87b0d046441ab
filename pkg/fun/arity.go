package fun

import (
	"fmt"
	"reflect"
)

// CountArity returns the declared positional parameter count of fn, or 0
// when the count is unknowable: variadic functions and non-functions both
// report 0, meaning "require an explicit arity".
func CountArity(fn any) int {
	t := reflect.TypeOf(fn)
	if t == nil || t.Kind() != reflect.Func || t.IsVariadic() {
		return 0
	}
	return t.NumIn()
}

// Lift bridges an arbitrary Go function into the Fn calling convention.
// An Fn passes through unchanged. The returned Fn panics when invoked with
// an argument count fn cannot accept, or with an unfilled placeholder left
// in a real slot; both are caller programming errors.
func Lift(fn any) Fn {
	switch f := fn.(type) {
	case Fn:
		return f
	case func(args ...any) any:
		return f
	}

	v := reflect.ValueOf(fn)
	t := v.Type()
	if t.Kind() != reflect.Func {
		panic(fmt.Sprintf("fun: cannot lift %T, not a function", fn))
	}

	return func(args ...any) any {
		if t.IsVariadic() {
			if len(args) < t.NumIn()-1 {
				panic(fmt.Sprintf("fun: %d argument(s) for %v, need at least %d",
					len(args), t, t.NumIn()-1))
			}
		} else if len(args) != t.NumIn() {
			panic(fmt.Sprintf("fun: %d argument(s) for %v, need %d", len(args), t, t.NumIn()))
		}

		in := make([]reflect.Value, len(args))
		for i, a := range args {
			if IsGap(a) {
				panic(fmt.Sprintf("fun: unfilled placeholder in argument %d of %v", i, t))
			}
			in[i] = argValue(t, i, a)
		}

		out := v.Call(in)
		switch len(out) {
		case 0:
			return nil
		case 1:
			return out[0].Interface()
		default:
			res := make([]any, len(out))
			for i, o := range out {
				res[i] = o.Interface()
			}
			return res
		}
	}
}

// Apply lifts fn and invokes it immediately. Helpers use it to accept
// caller-supplied functions in any shape: Fn, typed funcs, or closures.
func Apply(fn any, args ...any) any {
	return Lift(fn)(args...)
}

func argValue(t reflect.Type, i int, a any) reflect.Value {
	var want reflect.Type
	if t.IsVariadic() && i >= t.NumIn()-1 {
		want = t.In(t.NumIn() - 1).Elem()
	} else {
		want = t.In(i)
	}

	if a == nil {
		return reflect.Zero(want)
	}

	av := reflect.ValueOf(a)
	if av.Type().AssignableTo(want) {
		return av
	}
	if av.Type().ConvertibleTo(want) {
		return av.Convert(want)
	}
	panic(fmt.Sprintf("fun: argument %d: cannot use %T as %v", i, a, want))
}
