// Package releasechannel is ambient plumbing with no client-facing
// surface: a single compile-time assertion that the toolchain building
// this module supports generics.
//
// The original bookcase crate split its backing-allocator implementation
// across two files gated by a Cargo feature flag: nightly_allocator.rs,
// built against the nightly-only `std::alloc::Allocator` trait, and
// stable_allocator.rs, a hand-rolled equivalent for the stable release
// channel. Go has no such split — one compiler, one set of language
// features per go.mod `go` directive — so there is nothing to gate at
// build time. What the split was really protecting against (building
// against a language feature the toolchain doesn't have) still has a Go
// analogue: generics, which backing.Allocator's callers (Alloc[T] and
// friends) depend on outright. This package makes that dependency
// explicit as a generic declaration the compiler must typecheck at build
// time rather than leaving it implicit in "this just won't compile on old
// Go".
package releasechannel

// assertGenericsSupported is called only from Supported, with a value it
// discards. Its only job is to force the compiler to typecheck a generic
// declaration while building this package, the same role the original's feature-gated module split
// played for its own toolchain dependency.
func assertGenericsSupported[T any](v T) T { return v }

// Supported reports that this build was compiled against a toolchain with
// generics support. Its existence as a reachable symbol is the point, not
// its value — callers who want a startup log line can have one without
// needing to understand assertGenericsSupported above.
func Supported() bool {
	_ = assertGenericsSupported(0)
	return true
}
