package objsys

import "github.com/funvibe/objcore/internal/host"

// This file is component E: the depth-first chain builder (spec.md §4.3).

// buildChain materializes a fresh chain for (o, name, flags). name is nil
// for constructor/destructor dispatch. The chain is never cached by this
// function; callers decide whether/where to store it (component F).
func (f *Foundation) buildChain(o *Object, name *host.Name, flags Flags) *Chain {
	chain := newChain(o, flags, f.Epoch, o.ObjectEpoch, o.CreationEpoch)

	skipFilters := flags.Has(Special) || flags.Has(FilterHandling) || o.FilterHandlingFlag
	if !skipFilters {
		done := make(map[*host.Name]bool)
		for _, mixin := range o.Mixins {
			collectClassFilters(chain, mixin, o, flags, done)
		}
		for _, fn := range o.Filters {
			addImplementationChain(chain, o, fn, flags, nil, true)
		}
		collectClassFilters(chain, o.SelfClass, o, flags, done)
	}
	chain.FilterLength = chain.Len()

	addImplementationChain(chain, o, name, flags, nil, false)
	return chain
}

// collectClassFilters is spec.md §4.3.1: mixins first (depth-first), then
// C's own filters (deduplicated across the whole filter phase by name
// identity in done), then superclasses.
func collectClassFilters(chain *Chain, c *Class, o *Object, flags Flags, done map[*host.Name]bool) {
	if c == nil {
		return
	}
	for _, m := range c.Mixins {
		collectClassFilters(chain, m, o, flags, done)
	}
	for _, fn := range c.Filters {
		if !done[fn] {
			done[fn] = true
			addImplementationChain(chain, o, fn, flags, c, true)
		}
	}
	for _, s := range c.Superclasses {
		collectClassFilters(chain, s, o, flags, done)
	}
}

// addImplementationChain is spec.md §4.3.2. declarer is the class context
// to stamp on entries contributed by a class-declared filter (nil for
// object-declared filters and for the real Phase 2 implementation add).
// isFilter marks every entry produced by this call as filter (true) or
// implementation (false) — the builder always knows which phase it is in,
// so this is carried explicitly rather than inferred from filterLength,
// which isn't finalized until Phase 1 completes.
func addImplementationChain(chain *Chain, o *Object, name *host.Name, flags Flags, declarer *Class, isFilter bool) {
	local := flags
	if !flags.Has(Special) {
		if rec, ok := o.methodRecord(name); ok {
			verdict, ok2 := visibilityVerdict(local, rec)
			if !ok2 {
				return // per-object entry shadows everything and refuses the call
			}
			local = verdict
		}
		for _, mixin := range o.Mixins {
			walkClassChain(chain, mixin, name, local, declarer, isFilter)
		}
		if rec, ok := o.methodRecord(name); ok {
			appendRecord(chain, rec, isFilter, declarer)
		}
	}
	walkClassChain(chain, o.SelfClass, name, local, declarer, isFilter)
}

// walkClassChain is spec.md §4.3.3. For constructor/destructor dispatch,
// name lookup and the visibility verdict are skipped entirely (the slot
// is either present or it isn't), but the depth-first recursion through
// mixins then superclasses still happens exactly as for a named method —
// every ancestor's constructor/destructor is collected, not just the
// nearest one.
func walkClassChain(chain *Chain, c *Class, name *host.Name, flags Flags, declarer *Class, isFilter bool) {
	if c == nil {
		return
	}
	switch {
	case flags.Has(Constructor):
		if c.Constructor != nil {
			appendRecord(chain, c.Constructor, isFilter, declarer)
		}
	case flags.Has(Destructor):
		if c.Destructor != nil {
			appendRecord(chain, c.Destructor, isFilter, declarer)
		}
	default:
		if rec, ok := c.methodRecord(name); ok {
			verdict, ok2 := visibilityVerdict(flags, rec)
			if !ok2 {
				return // this class and its ancestors do not contribute
			}
			flags = verdict
			appendRecord(chain, rec, isFilter, declarer)
		}
	}
	for _, m := range c.Mixins {
		walkClassChain(chain, m, name, flags, declarer, isFilter)
	}
	for _, s := range c.Superclasses {
		walkClassChain(chain, s, name, flags, declarer, isFilter)
	}
}

// visibilityVerdict implements the shared visibility check used by both
// §4.3.2 and §4.3.3: a public request against a non-public record aborts
// the branch; otherwise the matching "definite" bit is set so descendants
// of this branch skip the recheck.
func visibilityVerdict(flags Flags, rec *MethodRecord) (Flags, bool) {
	if flags.Has(KnownState) {
		return flags, true
	}
	if flags.Has(Public) && !rec.isPublic() {
		return flags, false
	}
	if rec.isPublic() {
		return flags | DefinitePublic, true
	}
	return flags | DefiniteProtected, true
}

// appendRecord is spec.md §4.3.4.
func appendRecord(chain *Chain, rec *MethodRecord, isFilter bool, declarer *Class) {
	if rec == nil || !rec.Descriptor.hasBody() {
		return
	}
	if rec.isPrivate() && !chain.Flags.Has(Private) &&
		rec.DeclaringClass != nil && rec.DeclaringClass != chain.Target.SelfClass {
		return
	}

	start := 0
	if !isFilter {
		start = chain.FilterLength
	}
	for i := start; i < chain.Len(); i++ {
		e := chain.At(i)
		if e.Record == rec && e.IsFilter == isFilter {
			chain.shiftLeftAndAppendAt(i, InvokeEntry{Record: rec, IsFilter: isFilter, Declarer: e.Declarer})
			return
		}
	}
	chain.append(InvokeEntry{Record: rec, IsFilter: isFilter, Declarer: declarer})
}
