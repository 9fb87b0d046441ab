package obj

import (
	"fmt"
	"reflect"

	"github.com/ib-77/funk/pkg/fun"
)

// Prop looks up key in obj. Missing keys, nil and non-keyed containers all
// yield fun.None; a stored nil/false/empty value is a hit and comes back
// as stored.
var Prop = fun.CurryN(2, func(args ...any) any {
	return lookup(args[0], args[1])
})

// PropOr substitutes def when Prop would yield fun.None, and only then.
var PropOr = fun.CurryN(3, func(args ...any) any {
	if v := lookup(args[1], args[2]); !fun.IsNone(v) {
		return v
	}
	return args[0]
})

// Has reports whether obj holds key.
var Has = fun.CurryN(2, func(args ...any) any {
	return !fun.IsNone(lookup(args[0], args[1]))
})

// Path walks obj key by key, short-circuiting to fun.None the moment an
// intermediate value is missing or not a keyed container.
var Path = fun.CurryN(2, func(args ...any) any {
	cur := args[1]
	for _, k := range pathKeys(args[0]) {
		cur = lookup(k, cur)
		if fun.IsNone(cur) {
			return fun.None
		}
	}
	return cur
})

// PathOr substitutes def when Path would yield fun.None, and only then.
var PathOr = fun.CurryN(3, func(args ...any) any {
	if v := Path(args[1], args[2]); !fun.IsNone(v) {
		return v
	}
	return args[0]
})

func lookup(key, obj any) any {
	k, ok := key.(string)
	if !ok {
		panic(fmt.Sprintf("obj: key must be a string, got %T", key))
	}

	switch m := obj.(type) {
	case nil:
		return fun.None
	case map[string]any:
		if v, ok := m[k]; ok {
			return v
		}
		return fun.None
	}

	// other string-keyed map kinds, e.g. map[string]int
	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		if v := rv.MapIndex(reflect.ValueOf(k)); v.IsValid() {
			return v.Interface()
		}
	}
	return fun.None
}

func pathKeys(v any) []string {
	switch ks := v.(type) {
	case []string:
		return ks
	case []any:
		out := make([]string, len(ks))
		for i, k := range ks {
			s, ok := k.(string)
			if !ok {
				panic(fmt.Sprintf("obj: path key %d must be a string, got %T", i, k))
			}
			out[i] = s
		}
		return out
	}
	panic(fmt.Sprintf("obj: %T is not a key list", v))
}
