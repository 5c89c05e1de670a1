package objsys

import "github.com/funvibe/objcore/internal/host"

// This file is components B and C: the method table and filter store.

// DefineClassMethod creates or replaces the record for name on c with a
// new record carrying desc and vis. The visibility of a prior
// placeholder/record is not carried over (vis is applied unconditionally;
// callers that want "preserve existing visibility" should read the
// current record first, matching how objdefine composes export+body in
// separate host-level steps).
func (f *Foundation) DefineClassMethod(c *Class, name *host.Name, vis Visibility, desc *CallDescriptor) {
	c.Methods[name] = NewMethod(c, vis, desc)
	f.bumpEpoch()
}

// DeleteClassMethod removes a class method entirely (not just its body).
func (f *Foundation) DeleteClassMethod(c *Class, name *host.Name) {
	delete(c.Methods, name)
	f.bumpEpoch()
}

// ExportClass applies the insertion rule from spec.md §4.2: a name with no
// entry gets a visibility-only placeholder; an existing entry (with or
// without a body) has only its visibility flag flipped, so a previously
// defined body survives an export/unexport toggle.
func (f *Foundation) ExportClass(c *Class, name *host.Name, vis Visibility) {
	if m, ok := c.Methods[name]; ok {
		m.Visibility = vis
	} else {
		c.Methods[name] = newMarker(c, vis)
	}
	invalidateOnClassEdit(f, c)
}

func (f *Foundation) SetConstructor(c *Class, desc *CallDescriptor) {
	c.Constructor = NewMethod(c, VisPublic, desc)
	f.bumpEpoch()
}

func (f *Foundation) SetDestructor(c *Class, desc *CallDescriptor) {
	c.Destructor = NewMethod(c, VisPublic, desc)
	f.bumpEpoch()
}

// DefineObjectMethod creates or replaces a per-object method. Like its
// class-level counterpart, adding/deleting a method *body* always bumps
// the global epoch (spec.md §4.6: "methods can be invoked via any chain
// reaching them") — this is a coarser rule than the export/unexport
// bullet, which only touches the object's own epoch.
func (f *Foundation) DefineObjectMethod(o *Object, name *host.Name, vis Visibility, desc *CallDescriptor) {
	o.ensureOverlay()[name] = NewMethod(nil, vis, desc)
	f.bumpEpoch()
}

func (f *Foundation) DeleteObjectMethod(o *Object, name *host.Name) {
	if o.Overlay == nil {
		return
	}
	delete(o.Overlay, name)
	f.bumpEpoch()
}

// ExportObject is the object-level analogue of ExportClass.
func (f *Foundation) ExportObject(o *Object, name *host.Name, vis Visibility) {
	overlay := o.ensureOverlay()
	if m, ok := overlay[name]; ok {
		m.Visibility = vis
	} else {
		overlay[name] = newMarker(nil, vis)
	}
	invalidateOnObjectEdit(o)
}

// setFilterList replaces an ordered filter-name list, decrementing the old
// entries' ownership refcount and incrementing the new ones' (spec.md
// §4.2: "setting filters atomically decrements old entries and increments
// new ones").
func setFilterList(old, new []*host.Name) []*host.Name {
	for _, n := range old {
		n.DecRef()
	}
	for _, n := range new {
		n.IncRef()
	}
	return append([]*host.Name{}, new...)
}

func (f *Foundation) SetClassFilters(c *Class, names []*host.Name) {
	c.Filters = setFilterList(c.Filters, names)
	invalidateOnClassEdit(f, c)
}

func (f *Foundation) SetObjectFilters(o *Object, names []*host.Name) {
	o.Filters = setFilterList(o.Filters, names)
	invalidateOnObjectEdit(o)
}
