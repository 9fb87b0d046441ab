// Package fun implements an arity-tracking partial-application engine for
// dynamic callables, plus the sentinels shared by the helper subpackages.
//
// Core pieces:
// - CurryN/Curry: wrap a function so its arguments may arrive across any number of calls
// - Gap: placeholder reserving an argument slot for a later call
// - None: absence marker returned by lookups that found nothing
// - Lift/Apply/CountArity: reflection bridge from ordinary Go functions to Fn
// - Identity/Always/T/F/Tap: constant combinators
//
// A curried callable never mutates shared state: every partial application
// closes over a fresh argument buffer, so partially applied functions are
// safe to share across goroutines as long as the wrapped function is.
package fun
