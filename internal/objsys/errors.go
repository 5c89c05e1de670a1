package objsys

import "github.com/pkg/errors"

// Sentinel errors surfaced by the core (spec.md §7). Call sites wrap these
// with pkg/errors so a caller gets both a stable errors.Is target and a
// stack trace at the point of rejection.
var (
	// ErrCircularDependency is returned when a structural edit (new
	// superclass, new mixin) would make a class reachable from itself.
	ErrCircularDependency = errors.New("attempt to form circular dependency graph")

	// ErrWrongNature is returned when an edit would change whether an
	// object is a class.
	ErrWrongNature = errors.New("may not change class <-> non-class nature of an object")

	// ErrMethodNotFound is returned by GetCallContext when no chain entry
	// matches and no unknown-method handler is configured.
	ErrMethodNotFound = errors.New("method not found")
)
