package obj

import (
	"fmt"
	"reflect"

	"github.com/ib-77/funk/pkg/fun"
)

// Evolve applies the updater functions in tr to the matching keys of data,
// recursing where both sides hold nested maps. Keys present in data but
// absent from tr pass through untouched, as do keys in tr with no
// counterpart in data. Entries in tr that are neither functions nor maps
// are ignored.
var Evolve = fun.CurryN(2, func(args ...any) any {
	return evolve(specMap("Evolve", args[0]), args[1])
})

func evolve(tr map[string]any, data any) any {
	m, ok := data.(map[string]any)
	if !ok {
		return data
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		t, ok := tr[k]
		if !ok {
			out[k] = v
			continue
		}
		switch {
		case isMap(t):
			out[k] = evolve(specMap("Evolve", t), v)
		case isFunc(t):
			out[k] = fun.Apply(t, v)
		default:
			out[k] = v
		}
	}
	return out
}

// ApplySpec builds a map shaped like sp by invoking every function in it
// with the call's remaining arguments, recursing into nested maps. Extra
// arguments reach the spec functions through the engine's variadic
// pass-through.
var ApplySpec = fun.CurryN(2, func(args ...any) any {
	return applySpec(specMap("ApplySpec", args[0]), args[1:])
})

func applySpec(sp map[string]any, args []any) map[string]any {
	out := make(map[string]any, len(sp))
	for k, v := range sp {
		if isMap(v) {
			out[k] = applySpec(specMap("ApplySpec", v), args)
			continue
		}
		out[k] = fun.Apply(v, args...)
	}
	return out
}

func specMap(name string, v any) map[string]any {
	m, ok := v.(map[string]any)
	if !ok {
		panic(fmt.Sprintf("obj: %s spec must be map[string]any, got %T", name, v))
	}
	return m
}

func isMap(v any) bool {
	_, ok := v.(map[string]any)
	return ok
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
