package objsys

import (
	"context"

	"github.com/funvibe/objcore/internal/host"
)

// Visibility is a method record's export state (spec.md §3).
type Visibility uint8

const (
	VisPublic Visibility = iota
	VisProtected
	VisPrivate
)

// CallKind tags which variant of method body a CallDescriptor holds
// (spec.md §9 design notes: "Polymorphic method bodies... tagged variant").
type CallKind int

const (
	// CallNone marks a placeholder record with no body: a visibility
	// marker created by export/unexport when no method of that name
	// exists yet (spec.md §4.2).
	CallNone CallKind = iota
	// CallProcedure holds a host-compiled procedure body. The core never
	// interprets Body; it is opaque to this package, owned and executed
	// by the host.
	CallProcedure
	// CallForward holds a forwarding prefix (host-interpreted).
	CallForward
	// CallNative holds a Go function, used for the host's built-in
	// methods and for every example/test in this module.
	CallNative
)

// NativeFunc is the signature of a CallKind == CallNative method body.
// argv excludes the leading framework arguments counted by the call
// context's skip.
type NativeFunc func(ctx context.Context, cc *CallContext, argv []host.Value) (host.Value, error)

// CallDescriptor is the polymorphic call descriptor from spec.md §3: "a
// type tag + per-type payload giving the implementation." A nil
// *CallDescriptor, or one with Kind == CallNone, means "visibility-marker
// only" — the record exists to flip a name's exported bit but has no
// body, and §4.3.4 rule 1 says such entries are never appended to a
// chain.
type CallDescriptor struct {
	Kind CallKind

	Native  NativeFunc
	Body    interface{} // host-owned procedure AST; opaque here
	Forward []host.Value
}

func (d *CallDescriptor) hasBody() bool {
	return d != nil && d.Kind != CallNone
}

// MethodRecord is one declared or placeholder method (spec.md §3). It is
// reference-counted (preserve/release) so that a definition command
// executed by a re-entrant call can delete it mid-chain without
// invalidating a pinned invocation (spec.md §5, §9).
type MethodRecord struct {
	// DeclaringClass is nil when the record was declared directly on an
	// object (the per-object overlay), matching spec.md §3.
	DeclaringClass *Class
	Visibility     Visibility
	Descriptor     *CallDescriptor

	refcount int32
}

// NewMethod creates a method record with a body. Pass DeclaringClass =
// nil for a per-object method.
func NewMethod(declaringClass *Class, vis Visibility, desc *CallDescriptor) *MethodRecord {
	return &MethodRecord{DeclaringClass: declaringClass, Visibility: vis, Descriptor: desc}
}

// newMarker creates a visibility-only placeholder record (spec.md §4.2:
// "if the name has no entry, create a placeholder method record with no
// call descriptor").
func newMarker(declaringClass *Class, vis Visibility) *MethodRecord {
	return &MethodRecord{DeclaringClass: declaringClass, Visibility: vis, Descriptor: nil}
}

func (m *MethodRecord) preserve() { m.refcount++ }

func (m *MethodRecord) release() { m.refcount-- }

// Pinned reports whether this record is currently preserved by a live
// chain invocation — tests use this to confirm spec.md §5's guarantee
// that deleting a method mid-call does not corrupt the in-flight chain.
func (m *MethodRecord) Pinned() bool { return m.refcount > 0 }

func (m *MethodRecord) isPrivate() bool { return m.Visibility == VisPrivate }

func (m *MethodRecord) isPublic() bool { return m.Visibility == VisPublic }
