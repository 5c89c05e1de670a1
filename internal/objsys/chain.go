package objsys

// inlineCap is the small-buffer size: chains with this many entries or
// fewer never touch the heap for their entry storage (spec.md §3, §9:
// "keeps up to K (4-8) entries inline").
const inlineCap = 6

// InvokeEntry is one step of a call chain (spec.md §3).
type InvokeEntry struct {
	Record   *MethodRecord
	IsFilter bool
	// Declarer is set when this entry came from a class-declared filter,
	// giving the filter body context about which class contributed it.
	Declarer *Class
}

// Chain is a built, cacheable call chain (spec.md §3). The zero value is
// not useful; construct with newChain.
type Chain struct {
	Target *Object

	Epoch               int64
	ObjectEpoch         int64
	ObjectCreationEpoch int64

	Flags        Flags
	FilterLength int

	refcount int32

	inline    [inlineCap]InvokeEntry
	inlineLen int
	overflow  []InvokeEntry // non-nil once the chain has spilled to the heap
}

func newChain(target *Object, flags Flags, epoch, objEpoch, objCreationEpoch int64) *Chain {
	return &Chain{
		Target:              target,
		Flags:               flags,
		Epoch:               epoch,
		ObjectEpoch:         objEpoch,
		ObjectCreationEpoch: objCreationEpoch,
	}
}

// Len returns the number of entries currently in the chain.
func (c *Chain) Len() int {
	if c.overflow != nil {
		return len(c.overflow)
	}
	return c.inlineLen
}

// At returns the entry at position i. Panics if i is out of range, same
// as a slice index would.
func (c *Chain) At(i int) InvokeEntry {
	if c.overflow != nil {
		return c.overflow[i]
	}
	if i >= c.inlineLen {
		panic("objsys: chain index out of range")
	}
	return c.inline[i]
}

func (c *Chain) set(i int, e InvokeEntry) {
	if c.overflow != nil {
		c.overflow[i] = e
		return
	}
	c.inline[i] = e
}

// append adds e to the end, spilling from the inline array to a heap
// slice once the small-buffer is exhausted.
func (c *Chain) append(e InvokeEntry) {
	if c.overflow != nil {
		c.overflow = append(c.overflow, e)
		return
	}
	if c.inlineLen < inlineCap {
		c.inline[c.inlineLen] = e
		c.inlineLen++
		return
	}
	c.overflow = make([]InvokeEntry, c.inlineLen, c.inlineLen*2)
	copy(c.overflow, c.inline[:c.inlineLen])
	c.overflow = append(c.overflow, e)
}

// shiftLeftAndAppendAt removes the entry at position i and re-appends it
// at the end, preserving every other entry's relative order — the
// mechanics behind the lateness rule (spec.md §4.3.4): "shift entries
// i+1..end left by one and write the record at the end."
func (c *Chain) shiftLeftAndAppendAt(i int, e InvokeEntry) {
	n := c.Len()
	for j := i; j < n-1; j++ {
		c.set(j, c.At(j+1))
	}
	c.set(n-1, e)
}

func (c *Chain) preserve() { c.refcount++ }

func (c *Chain) release() { c.refcount-- }

// Pinned reports whether a live call context (or cache entry) still holds
// this chain.
func (c *Chain) Pinned() bool { return c.refcount > 0 }

// Entries returns a defensive copy of the chain's entries, for tests and
// introspection (cmd/objcore) that want to range over the whole chain
// without reaching into the small-buffer/overflow split.
func (c *Chain) Entries() []InvokeEntry {
	out := make([]InvokeEntry, c.Len())
	for i := range out {
		out[i] = c.At(i)
	}
	return out
}
