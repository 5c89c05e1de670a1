package objsys

import (
	"context"

	"github.com/funvibe/objcore/internal/host"
)

// This file is component G: the invocation engine.

// CallContext is the transient handle returned by GetCallContext (spec.md
// §3 Call context). It owns a strong reference to its chain for its
// lifetime.
type CallContext struct {
	foundation *Foundation
	chain      *Chain
	index      int
	skip       int
}

// defaultSkip matches spec.md §3: "typically 2: the object command and
// the method name".
const defaultSkip = 2

func newCallContext(f *Foundation, chain *Chain) *CallContext {
	chain.preserve()
	return &CallContext{foundation: f, chain: chain, skip: defaultSkip}
}

// Close releases the context's reference to its chain (spec.md §6:
// delete_context).
func (cc *CallContext) Close() {
	cc.chain.release()
}

// Chain exposes the underlying chain for introspection (tests, CLI).
func (cc *CallContext) Chain() *Chain { return cc.chain }

// Index returns the context's current step.
func (cc *CallContext) Index() int { return cc.index }

// Invoke steps the chain starting at cc.index (spec.md §4.5). On the
// first step of the first-level invocation it pins every method record in
// the chain and, for an unknown-method chain, shaves one off skip so the
// requested-but-missing name becomes visible to the handler; both are
// undone/observed symmetrically regardless of how this call returns.
func (cc *CallContext) Invoke(ctx context.Context, argv []host.Value) (host.Value, error) {
	isFirst := cc.index == 0
	if isFirst {
		for i := 0; i < cc.chain.Len(); i++ {
			cc.chain.At(i).Record.preserve()
		}
		if cc.chain.Flags.Has(UnknownMethod) {
			cc.skip--
		}
		defer func() {
			for i := 0; i < cc.chain.Len(); i++ {
				cc.chain.At(i).Record.release()
			}
		}()
	}

	if cc.index >= cc.chain.Len() {
		return host.Nil{}, nil
	}

	entry := cc.chain.At(cc.index)
	target := cc.chain.Target

	prevFilterHandling := target.FilterHandlingFlag
	target.FilterHandlingFlag = entry.IsFilter || cc.chain.Flags.Has(FilterHandling)
	defer func() { target.FilterHandlingFlag = prevFilterHandling }()

	visible := argv
	if cc.skip > 0 && cc.skip <= len(argv) {
		visible = argv[cc.skip:]
	} else if cc.skip > len(argv) {
		visible = nil
	}

	return entry.Record.Descriptor.Native(ctx, cc, visible)
}

// Next constructs a child context at index+1 and invokes it — the
// core-side half of the host's `next` primitive (spec.md §4.5); the
// method body that calls this is host/test code, external to this
// package.
func (cc *CallContext) Next(ctx context.Context, argv []host.Value) (host.Value, error) {
	child := &CallContext{foundation: cc.foundation, chain: cc.chain, index: cc.index + 1, skip: cc.skip}
	return child.Invoke(ctx, argv)
}
