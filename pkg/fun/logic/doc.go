// Package logic provides curried predicate combinators, branching and
// failure capture built on the fun curry engine.
//
// Operations:
// - AllPass/AnyPass/NonePass: fold a slice of unary predicates over one value
// - Both/Either/Complement: two-predicate and negation combinators
// - IfElse/When/Unless: route the data value itself through a branch
// - TryCatch: convert a panic inside the tryer into the catcher's return value
//
// Predicate results are judged by fun.Truthy, an absence check rather than
// strict boolean equality: nil, false and fun.None fail, anything else
// passes.
package logic
