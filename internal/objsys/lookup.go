package objsys

import (
	"github.com/funvibe/objcore/internal/host"
	"github.com/pkg/errors"
)

// GetCallContext is the sole entry point for building/reusing a chain and
// handing it to a caller as an owned CallContext (spec.md §6). A nil,
// ErrMethodNotFound result means "no implementation found, and no
// unknown-method handler exists" — the caller reports "method not found"
// (spec.md §7).
func (f *Foundation) GetCallContext(o *Object, name *host.Name, flags Flags) (*CallContext, error) {
	chain := f.lookupOrBuild(o, name, flags)
	if chain.Len() > chain.FilterLength {
		return newCallContext(f, chain), nil
	}

	if flags.Has(UnknownMethod) {
		return nil, errors.Wrapf(ErrMethodNotFound, "method %q", nameText(name))
	}

	// spec.md §8 S6: no implementation matched; retry against the
	// interned "unknown" name. The resulting chain is marked so it is
	// never reused (Epoch == -1) and never cached.
	unknown := f.buildUnknownChain(o, flags)
	if unknown.Len() <= unknown.FilterLength {
		return nil, errors.Wrapf(ErrMethodNotFound, "method %q", nameText(name))
	}
	return newCallContext(f, unknown), nil
}

func (f *Foundation) buildUnknownChain(o *Object, flags Flags) *Chain {
	uflags := flags | UnknownMethod | OOUnknownMethod
	chain := f.buildChain(o, f.UnknownName, uflags)
	chain.Epoch = -1
	return chain
}

func nameText(n *host.Name) string {
	if n == nil {
		return "<special>"
	}
	return n.Text
}
