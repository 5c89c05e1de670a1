package objsys

import "github.com/funvibe/objcore/internal/host"

// Class is owned by its representative Object (spec.md §3). Back-link
// sets (Subclasses, Instances, MixinSubclasses) exist purely for
// invalidation fan-out (§4.6) and the circularity check (§4.1); they are
// never walked during chain building, only during structural edits.
type Class struct {
	Self *Object // representative object; Self.AsClass == this

	Methods      map[*host.Name]*MethodRecord
	Superclasses []*Class // ordered: dispatch order in §4.3.3
	Mixins       []*Class // ordered

	Subclasses      map[*Class]struct{}
	Instances       map[*Object]struct{}
	MixinSubclasses map[*Class]struct{}

	Filters []*host.Name

	Constructor *MethodRecord
	Destructor  *MethodRecord

	cache *CacheTable // Tier 2, spec.md §4.4
}

// NewClass creates a class with no superclasses whose representative
// object is an instance of f.ClassOfClasses (when that is set). The host
// is expected to call SetSuperclasses to attach it to the root class,
// mirroring how object allocation stays an external concern.
func NewClass(f *Foundation, creationEpoch int64, displayName string) *Class {
	self := &Object{CreationEpoch: creationEpoch, DisplayName: displayName}
	c := &Class{
		Self:            self,
		Methods:         make(map[*host.Name]*MethodRecord),
		Subclasses:      make(map[*Class]struct{}),
		Instances:       make(map[*Object]struct{}),
		MixinSubclasses: make(map[*Class]struct{}),
		cache:           NewCacheTable(),
	}
	self.AsClass = c
	self.SelfClass = f.ClassOfClasses
	if f.ClassOfClasses != nil {
		f.ClassOfClasses.Instances[self] = struct{}{}
	}
	return c
}

// Close releases the class's Tier-2 cache table. Adapted from the
// original's cache-table teardown on class deletion (SPEC_FULL §11); full
// class destruction (unlinking from every superclass/subclass/instance
// set) is the host's allocation layer and stays out of scope.
func (c *Class) Close() {
	c.cache.Close()
}

func (c *Class) methodRecord(name *host.Name) (*MethodRecord, bool) {
	m, ok := c.Methods[name]
	return m, ok
}
