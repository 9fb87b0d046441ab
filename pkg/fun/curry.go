package fun

import "fmt"

// Fn is the calling convention shared by every curried callable. Arguments
// travel as any so a placeholder can occupy a real argument slot.
type Fn func(args ...any) any

// CurryN wraps target so its arguments may arrive in any grouping across any
// number of calls. Once arity real (non-placeholder) arguments have
// accumulated, target is invoked with the whole buffer; arguments beyond
// arity are passed through untouched, which is how variadic targets work.
func CurryN(arity int, target Fn) Fn {
	if arity < 0 {
		panic(fmt.Sprintf("fun: CurryN with negative arity %d", arity))
	}
	return step(arity, nil, target)
}

// Curry reads the declared parameter count of target via reflection and
// curries it. Variadic targets report arity 0 and therefore invoke on the
// first call; use CurryN with a chosen arity to curry those.
func Curry(target any) Fn {
	return CurryN(CountArity(target), Lift(target))
}

// step closes over one immutable received buffer. Each call builds a new
// buffer and either saturates or spawns the next step; prior steps stay
// valid and can be applied again with different arguments.
func step(arity int, received []any, target Fn) Fn {
	return func(args ...any) any {
		buf := combine(received, args)
		if countReal(buf) >= arity {
			return target(buf...)
		}
		return step(arity, buf, target)
	}
}

// combine walks received left to right, filling each placeholder with the
// next unconsumed incoming value when one is available, then appends the
// unconsumed remainder of incoming. Without placeholders this is plain
// concatenation.
func combine(received, incoming []any) []any {
	out := make([]any, 0, len(received)+len(incoming))
	next := 0
	for _, v := range received {
		if IsGap(v) && next < len(incoming) {
			out = append(out, incoming[next])
			next++
			continue
		}
		out = append(out, v)
	}
	return append(out, incoming[next:]...)
}

func countReal(buf []any) int {
	n := 0
	for _, v := range buf {
		if !IsGap(v) {
			n++
		}
	}
	return n
}
