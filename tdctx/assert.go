package tdctx

import "fmt"

// DebugAssertions gates debug-only invariant checks (ground-truth
// recomputation of internal bookkeeping, e.g. fillorder's fill-table
// check) that are too expensive to run unconditionally. Off by default;
// tests that want the extra verification flip it on for their duration.
var DebugAssertions = false

// InvariantViolation is the panic value raised by Assert when
// DebugAssertions is enabled and a debug-only check fails. It must never be
// observed on valid input; it signals a programming error upstream, not a
// recoverable condition, so it is a panic rather than an error return.
type InvariantViolation struct {
	Component string
	Detail    string
}

func (e InvariantViolation) Error() string {
	return fmt.Sprintf("%s: internal invariant violated: %s", e.Component, e.Detail)
}

// Assert panics with InvariantViolation{component, detail} if ok is false
// and DebugAssertions is enabled. No-op otherwise.
func Assert(ok bool, component, detail string) {
	if !ok && DebugAssertions {
		panic(InvariantViolation{Component: component, Detail: detail})
	}
}
