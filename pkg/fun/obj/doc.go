// Package obj provides curried, data-last access and transformation of
// string-keyed containers.
//
// Operations:
// - Prop/Path: lookup, yielding fun.None when nothing is there
// - PropOr/PathOr: substitute a default, but only for fun.None
// - Has: truthy membership test
// - Evolve: apply a spec of updater functions to matching keys, recursively
// - ApplySpec: build a map by applying every function in a (nested) spec
//
// A stored falsy value is never confused with absence: PropOr leaves a
// stored nil, false or empty string exactly as it found it.
package obj
