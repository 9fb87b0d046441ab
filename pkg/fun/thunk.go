package fun

// Identity returns its argument unchanged.
var Identity = CurryN(1, func(args ...any) any {
	return args[0]
})

// Always returns a function producing v regardless of its arguments.
func Always(v any) Fn {
	return func(...any) any {
		return v
	}
}

// T and F are the constant predicates.
var (
	T = Always(true)
	F = Always(false)
)

// Tap runs effect on data for its side effects and returns data unchanged.
var Tap = CurryN(2, func(args ...any) any {
	Apply(args[0], args[1])
	return args[1]
})
