// Package arith provides curried, data-last numeric wrappers built on the
// fun curry engine.
//
// Operations:
// - Add/Subtract/Multiply/Divide/Modulo: binary arithmetic
// - Inc/Dec/Negate: unary shortcuts
// - Max/Min: pick one of two operands by magnitude
//
// Integer operands stay integral (Divide excepted, which always yields
// float64); mixing in a float widens the result to float64. A non-numeric
// operand is a caller error and panics.
package arith
