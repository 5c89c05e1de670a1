package host

import (
	"sync"

	"github.com/google/uuid"
)

// InternalRep is an opaque typed payload a Name can carry, the host-value
// analogue of a Tcl_ObjType's internal representation. The object system
// stashes a built call-chain here (Tier 1 of the chain cache, spec §4.4);
// this package never looks inside it.
type InternalRep interface{}

// Name is an interned method name. Identity, not string content, is what
// the object system keys lookups on — two Names with equal Text are
// guaranteed to be the same pointer, so a map[*Name]V comparison is
// pointer comparison.
type Name struct {
	Text string
	ID   uuid.UUID

	mu       sync.Mutex
	rep      InternalRep
	refcount int32
}

// IncRef/DecRef track the filter stores that currently hold this name (spec.md §4.2: "reference-count-owned by the holder").
// Names are intern-table owned and never actually freed in this Go port —
// GC retires them once the intern table itself is dropped — so these only
// exist to keep the ownership count observable and testable, the way the
// original's Tcl_IncrRefCount/DecrRefCount calls are.
func (n *Name) IncRef() {
	n.mu.Lock()
	n.refcount++
	n.mu.Unlock()
}

func (n *Name) DecRef() {
	n.mu.Lock()
	n.refcount--
	n.mu.Unlock()
}

func (n *Name) RefCount() int32 {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.refcount
}

// SetInternalRep attaches (or clears, with nil) the cached chain for this
// name. Call sites in objsys pass their own *Chain; this package only
// stores and returns it opaquely.
func (n *Name) SetInternalRep(rep InternalRep) {
	n.mu.Lock()
	n.rep = rep
	n.mu.Unlock()
}

// InternalRep returns the previously stashed payload, if any.
func (n *Name) InternalRep() (InternalRep, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.rep, n.rep != nil
}

func (n *Name) Type() string    { return "NAME" }
func (n *Name) Inspect() string { return n.Text }

// NameTable is a per-foundation intern table. The host is expected to
// route every method/filter name it hands to the core through Intern, so
// the core can rely on pointer identity everywhere it says "name value".
type NameTable struct {
	mu    sync.Mutex
	names map[string]*Name
}

func NewNameTable() *NameTable {
	return &NameTable{names: make(map[string]*Name)}
}

func (t *NameTable) Intern(text string) *Name {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.names[text]; ok {
		return n
	}
	n := &Name{Text: text, ID: uuid.New()}
	t.names[text] = n
	return n
}
