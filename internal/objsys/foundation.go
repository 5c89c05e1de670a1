package objsys

import (
	"github.com/funvibe/objcore/internal/host"
	"github.com/google/uuid"
)

// Foundation is the per-interpreter singleton (spec.md §3). Epoch is the
// global foundation epoch (component D): bumping it invalidates every
// cached chain in the process, lazily, on next lookup.
type Foundation struct {
	ID uuid.UUID

	Epoch int64

	RootClass      *Class
	ClassOfClasses *Class

	UnknownName *host.Name

	Names *host.NameTable
}

// NewFoundation creates a foundation with its own name table and an
// interned "unknown" name, but no root/class-of-classes wiring — the host
// constructs those with NewClass and assigns them, since bootstrapping the
// root of a class hierarchy is an object-allocation concern (spec.md §1).
func NewFoundation() *Foundation {
	f := &Foundation{
		ID:    uuid.New(),
		Names: host.NewNameTable(),
	}
	f.UnknownName = f.Names.Intern("unknown")
	return f
}

func (f *Foundation) bumpEpoch() {
	f.Epoch++
	logger.Sugar().Debugw("foundation epoch bumped", "foundation", f.ID, "epoch", f.Epoch)
}
