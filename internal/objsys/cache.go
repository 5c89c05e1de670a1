package objsys

import (
	"github.com/funvibe/objcore/internal/host"
	lru "github.com/hashicorp/golang-lru/v2"
)

// This file is component F: the two-tier chain cache.

// defaultCacheSize bounds the Tier-2 per-class cache. The original's plain
// hash table has no eviction; a class that accumulates many distinct
// method names across its lifetime (dynamic languages do this) would grow
// it forever. Bounding it with an LRU (see SPEC_FULL §10) trades a
// vanishingly rare extra rebuild for a hard memory ceiling.
const defaultCacheSize = 4096

// CacheTable is the Tier-2 per-class cache (spec.md §6:
// allocate_cache_table/delete_cache_table). One is created per Class.
type CacheTable struct {
	lru *lru.Cache[*host.Name, *Chain]
}

// NewCacheTable allocates a Tier-2 cache table.
func NewCacheTable() *CacheTable {
	c, err := lru.New[*host.Name, *Chain](defaultCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which defaultCacheSize
		// never is; a panic here would indicate a programming error, not a
		// runtime condition callers should handle.
		panic(err)
	}
	return &CacheTable{lru: c}
}

// Close releases the cache table. Safe to call on an already-empty table.
func (t *CacheTable) Close() {
	t.lru.Purge()
}

func (t *CacheTable) get(name *host.Name) (*Chain, bool) {
	return t.lru.Get(name)
}

func (t *CacheTable) put(name *host.Name, c *Chain) {
	c.preserve()
	if evicted, ok := t.lru.Get(name); ok && evicted != nil {
		evicted.release()
	}
	t.lru.Add(name, c)
}

func (t *CacheTable) delete(name *host.Name) {
	if c, ok := t.lru.Get(name); ok {
		c.release()
	}
	t.lru.Remove(name)
}

// reusable is the reuse predicate from spec.md §4.4.
func reusable(c *Chain, o *Object, f *Foundation, flags Flags) bool {
	mask := reuseMask(flags)
	return c.ObjectCreationEpoch == o.CreationEpoch &&
		c.Epoch == f.Epoch &&
		c.ObjectEpoch == o.ObjectEpoch &&
		(c.Flags&mask) == (flags&mask)
}

// cachingSuppressed reports whether a chain for this request must never be
// read from or written to either cache tier (spec.md §4.4: special,
// filter-handling requests, or a receiver mid-filter-call, "depend on
// transient execution context").
func cachingSuppressed(o *Object, flags Flags) bool {
	return flags.Has(Special) || flags.Has(FilterHandling) || o.FilterHandlingFlag
}

// lookupOrBuild is the Tier-1/Tier-2 orchestration: consult the name's
// stashed chain, then the class cache, and build on a double miss.
func (f *Foundation) lookupOrBuild(o *Object, name *host.Name, flags Flags) *Chain {
	suppressed := cachingSuppressed(o, flags)

	if !suppressed && name != nil {
		if rep, ok := name.InternalRep(); ok {
			if c, ok2 := rep.(*Chain); ok2 && reusable(c, o, f, flags) {
				return c
			}
		}
		if o.SelfClass != nil {
			if c, ok := o.SelfClass.cache.get(name); ok {
				if reusable(c, o, f, flags) {
					return c
				}
				o.SelfClass.cache.delete(name)
			}
		}
	}

	chain := f.buildChain(o, name, flags)
	if !suppressed && chain.Epoch != -1 && o.SelfClass != nil {
		o.SelfClass.cache.put(name, chain)
	}
	return chain
}

// StashOnName attaches cc's chain to name's internal representation (Tier
// 1). Spec.md §4.4: "Tier 1 is populated lazily when the host value
// representing the name is used as an argument" — i.e. only on a
// host-triggered event, not on every build, so this is exposed as its own
// external entry point rather than called automatically from
// lookupOrBuild.
func (f *Foundation) StashOnName(name *host.Name, cc *CallContext) {
	cc.chain.preserve()
	name.SetInternalRep(cc.chain)
}
