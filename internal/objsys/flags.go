package objsys

import "strings"

// Flags is the closed bit set from spec.md §6: visibility requests on a
// lookup, the two special dispatch kinds, the filter-handling marker, two
// builder-internal "already resolved" bits, and two chain-level markers
// for the unknown-method fallback.
type Flags uint32

const (
	Public Flags = 1 << iota
	Private
	Constructor
	Destructor
	FilterHandling
	DefinitePublic
	DefiniteProtected
	UnknownMethod
	OOUnknownMethod
)

// Special identifies constructor/destructor dispatch, which bypasses name
// lookup entirely (§4.3.3).
const Special = Constructor | Destructor

// KnownState marks that a visibility verdict has already been computed for
// this branch of the walk, so §4.3.3 does not re-check it against the
// receiver's overlay.
const KnownState = DefinitePublic | DefiniteProtected

// reuseMask is the set of bits compared between a cached chain and a new
// request, per the reuse predicate in spec.md §4.4: a chain built for a
// public request also satisfies a non-public request (public visibility
// is a subset of non-public), so Public is excluded from the "non-public
// request" mask but not from the "public request" mask.
func reuseMask(requested Flags) Flags {
	all := Public | Private | Constructor | Destructor | FilterHandling | UnknownMethod | OOUnknownMethod
	if requested&Public != 0 {
		return all
	}
	return all &^ Public
}

func (f Flags) Has(bit Flags) bool { return f&bit != 0 }

var flagNames = []struct {
	bit  Flags
	name string
}{
	{Public, "PUBLIC"},
	{Private, "PRIVATE"},
	{Constructor, "CONSTRUCTOR"},
	{Destructor, "DESTRUCTOR"},
	{FilterHandling, "FILTER_HANDLING"},
	{DefinitePublic, "DEFINITE_PUBLIC"},
	{DefiniteProtected, "DEFINITE_PROTECTED"},
	{UnknownMethod, "UNKNOWN_METHOD"},
	{OOUnknownMethod, "OO_UNKNOWN_METHOD"},
}

func (f Flags) String() string {
	if f == 0 {
		return "NONE"
	}
	var parts []string
	for _, fn := range flagNames {
		if f.Has(fn.bit) {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
