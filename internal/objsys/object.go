package objsys

import "github.com/funvibe/objcore/internal/host"

// Object is a live instance (spec.md §3). Every class is also an Object
// (Class embeds a pointer back to its representative Object, and Object
// holds a non-nil AsClass iff it is one) — this mirrors the original's
// "every class is also an object" invariant without a common base type,
// since Go has no single-inheritance class hierarchy to hang that on.
type Object struct {
	SelfClass *Class

	// Overlay is the per-object method table, created lazily. nil means
	// "no per-object methods yet", distinct from an empty-but-present map,
	// since §4.3.2 checks "does an entry for M exist" before consulting
	// visibility.
	Overlay map[*host.Name]*MethodRecord

	Mixins  []*Class
	Filters []*host.Name

	// AsClass is non-nil iff this object is itself a class (spec.md §3:
	// "optional class record (non-null iff this object is a class)").
	AsClass *Class

	CreationEpoch int64
	ObjectEpoch   int64

	// FilterHandlingFlag prevents recursive filter application during a
	// filter's own call (§4.3 Phase 1 precondition).
	FilterHandlingFlag bool

	// DisplayName is a host-supplied label used only for error messages,
	// logging, and the CLI; the core never interprets or compares it
	// (supplements the original's stable object naming, see SPEC_FULL §11).
	DisplayName string
}

// NewObject creates a plain (non-class) instance of selfClass at the
// given creation epoch. Binding the object to a namespace/command name is
// the host's responsibility (spec.md §1, out of scope here).
func NewObject(selfClass *Class, creationEpoch int64, displayName string) *Object {
	o := &Object{
		SelfClass:     selfClass,
		CreationEpoch: creationEpoch,
		DisplayName:   displayName,
	}
	if selfClass != nil {
		selfClass.Instances[o] = struct{}{}
	}
	return o
}

func (o *Object) bumpEpoch() { o.ObjectEpoch++ }

// methodRecord looks up M in the per-object overlay, if any.
func (o *Object) methodRecord(name *host.Name) (*MethodRecord, bool) {
	if o.Overlay == nil {
		return nil, false
	}
	m, ok := o.Overlay[name]
	return m, ok
}

func (o *Object) ensureOverlay() map[*host.Name]*MethodRecord {
	if o.Overlay == nil {
		o.Overlay = make(map[*host.Name]*MethodRecord)
	}
	return o.Overlay
}
