package arith

import (
	"fmt"

	"github.com/ib-77/funk/pkg/fun"
)

// Add returns the sum of its two operands.
var Add = fun.CurryN(2, func(args ...any) any {
	return binOp("add", args[0], args[1],
		func(a, b int64) int64 { return a + b },
		func(a, b float64) float64 { return a + b })
})

// Subtract returns args[0] - args[1]; combined with a placeholder it reads
// naturally data-last: Subtract(fun.Gap, 1) decrements.
var Subtract = fun.CurryN(2, func(args ...any) any {
	return binOp("subtract", args[0], args[1],
		func(a, b int64) int64 { return a - b },
		func(a, b float64) float64 { return a - b })
})

// Multiply returns the product of its two operands.
var Multiply = fun.CurryN(2, func(args ...any) any {
	return binOp("multiply", args[0], args[1],
		func(a, b int64) int64 { return a * b },
		func(a, b float64) float64 { return a * b })
})

// Divide returns args[0] / args[1] as float64, whatever the operand kinds.
var Divide = fun.CurryN(2, func(args ...any) any {
	a := number("divide", args[0])
	b := number("divide", args[1])
	return a.f / b.f
})

// Modulo returns args[0] % args[1]; both operands must be integral.
var Modulo = fun.CurryN(2, func(args ...any) any {
	a := number("modulo", args[0])
	b := number("modulo", args[1])
	if !a.isInt || !b.isInt {
		panic(fmt.Sprintf("arith: modulo needs integer operands, got %T and %T", args[0], args[1]))
	}
	return int(a.i % b.i)
})

// Inc adds one.
var Inc = fun.CurryN(1, func(args ...any) any {
	return Add(args[0], 1)
})

// Dec subtracts one.
var Dec = fun.CurryN(1, func(args ...any) any {
	return Subtract(args[0], 1)
})

// Negate flips the sign of its operand.
var Negate = fun.CurryN(1, func(args ...any) any {
	return binOp("negate", 0, args[0],
		func(a, b int64) int64 { return -b },
		func(a, b float64) float64 { return -b })
})

// Max returns the larger operand, unchanged.
var Max = fun.CurryN(2, func(args ...any) any {
	if number("max", args[0]).f >= number("max", args[1]).f {
		return args[0]
	}
	return args[1]
})

// Min returns the smaller operand, unchanged.
var Min = fun.CurryN(2, func(args ...any) any {
	if number("min", args[0]).f <= number("min", args[1]).f {
		return args[0]
	}
	return args[1]
})

type num struct {
	i     int64
	f     float64
	isInt bool
}

func binOp(name string, a, b any,
	ints func(int64, int64) int64,
	floats func(float64, float64) float64) any {

	x := number(name, a)
	y := number(name, b)
	if x.isInt && y.isInt {
		return int(ints(x.i, y.i))
	}
	return floats(x.f, y.f)
}

func number(name string, v any) num {
	switch n := v.(type) {
	case int:
		return num{i: int64(n), f: float64(n), isInt: true}
	case int8:
		return num{i: int64(n), f: float64(n), isInt: true}
	case int16:
		return num{i: int64(n), f: float64(n), isInt: true}
	case int32:
		return num{i: int64(n), f: float64(n), isInt: true}
	case int64:
		return num{i: n, f: float64(n), isInt: true}
	case uint:
		return num{i: int64(n), f: float64(n), isInt: true}
	case uint8:
		return num{i: int64(n), f: float64(n), isInt: true}
	case uint16:
		return num{i: int64(n), f: float64(n), isInt: true}
	case uint32:
		return num{i: int64(n), f: float64(n), isInt: true}
	case uint64:
		return num{i: int64(n), f: float64(n), isInt: true}
	case float32:
		return num{f: float64(n)}
	case float64:
		return num{f: n}
	}
	panic(fmt.Sprintf("arith: %s: %T is not a number", name, v))
}
