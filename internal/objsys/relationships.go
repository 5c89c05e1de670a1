package objsys

import "github.com/pkg/errors"

// This file is component A: the bidirectional relationship registry.
// Every mutator here keeps both directions of a link in lockstep before
// returning — single-threaded, so no lock is needed, but a caller must
// never observe one side updated without the other (spec.md §4.1).

func addSuperclassLink(c, super *Class) {
	c.Superclasses = append(c.Superclasses, super)
	super.Subclasses[c] = struct{}{}
}

func removeSuperclassLink(c, super *Class) {
	for i, s := range c.Superclasses {
		if s == super {
			c.Superclasses = append(c.Superclasses[:i], c.Superclasses[i+1:]...)
			break
		}
	}
	delete(super.Subclasses, c)
}

func addMixinLink(holder *Class, mixin *Class) {
	holder.Mixins = append(holder.Mixins, mixin)
	mixin.MixinSubclasses[holder] = struct{}{}
}

func removeMixinLink(holder *Class, mixin *Class) {
	for i, m := range holder.Mixins {
		if m == mixin {
			holder.Mixins = append(holder.Mixins[:i], holder.Mixins[i+1:]...)
			break
		}
	}
	delete(mixin.MixinSubclasses, holder)
}

func addInstanceLink(o *Object, c *Class) {
	o.SelfClass = c
	c.Instances[o] = struct{}{}
}

func removeInstanceLink(o *Object, c *Class) {
	delete(c.Instances, o)
}

// reachable runs a plain DFS from start, looking for target, over both
// superclass and mixin edges. It must terminate even when a caller is
// probing a proposed (not-yet-installed) edge, so it never follows an
// edge that isn't already part of the live graph — the proposed edge is
// checked by the caller before any link is installed (spec.md §4.1: "never
// explore the proposed edge before acceptance").
func reachable(start, target *Class) bool {
	if start == target {
		return true
	}
	visited := make(map[*Class]bool)
	var walk func(c *Class) bool
	walk = func(c *Class) bool {
		if visited[c] {
			return false
		}
		visited[c] = true
		for _, s := range c.Superclasses {
			if s == target || walk(s) {
				return true
			}
		}
		for _, m := range c.Mixins {
			if m == target || walk(m) {
				return true
			}
		}
		return false
	}
	return walk(start)
}

// SetSuperclasses replaces c's superclass list, rejecting any candidate
// that would make c reachable from itself, then bumps invalidation
// (spec.md §4.1, §4.6). On rejection the graph is left completely
// unchanged.
func (f *Foundation) SetSuperclasses(c *Class, supers []*Class) error {
	for _, s := range supers {
		if s == c || reachable(s, c) {
			return errors.Wrapf(ErrCircularDependency, "class %s as superclass of %s", s.Self.DisplayName, c.Self.DisplayName)
		}
	}
	for _, old := range append([]*Class{}, c.Superclasses...) {
		removeSuperclassLink(c, old)
	}
	for _, s := range supers {
		addSuperclassLink(c, s)
	}
	invalidateOnClassEdit(f, c)
	return nil
}

// SetClassMixins replaces c's mixin list, with the same circularity
// rejection as SetSuperclasses (a mixin graph cycle is just as fatal to
// the depth-first walk in §4.3.3).
func (f *Foundation) SetClassMixins(c *Class, mixins []*Class) error {
	for _, m := range mixins {
		if m == c || reachable(m, c) {
			return errors.Wrapf(ErrCircularDependency, "class %s as mixin of %s", m.Self.DisplayName, c.Self.DisplayName)
		}
	}
	for _, old := range append([]*Class{}, c.Mixins...) {
		removeMixinLink(c, old)
	}
	for _, m := range mixins {
		addMixinLink(c, m)
	}
	invalidateOnClassEdit(f, c)
	return nil
}

// SetObjectMixins replaces a plain object's mixin list. Unlike class
// mixins, an object mixin cannot create a class-graph cycle (objects are
// leaves in the reachability graph), so no circularity check is needed —
// only the "must be a class" check, enforced by the caller passing *Class
// values.
func (f *Foundation) SetObjectMixins(o *Object, mixins []*Class) {
	o.Mixins = mixins
	invalidateOnObjectEdit(o)
}

// SetSelfClass reassigns o's self-class. Rejects any change that would
// flip o's class/non-class nature: an object only becomes a class by
// being created with one (spec.md §1, object allocation is external), so
// a self-class whose own ancestry does/doesn't reach the class-of-classes
// must agree with whether o already has an AsClass record (grounded in
// tclOODefineCmds.c's TclOODefineSelfClassObjCmd nature check). Changing
// a class's self-class (i.e. o.AsClass != nil) is a foundation-wide edit
// since it can change which metaclass methods are visible to every
// instance; changing a plain object's self-class only affects that
// object.
func (f *Foundation) SetSelfClass(o *Object, newClass *Class) error {
	newIsMeta := newClass == f.ClassOfClasses || reachable(newClass, f.ClassOfClasses)
	if (o.AsClass != nil) != newIsMeta {
		return errors.Wrapf(ErrWrongNature, "object %s", o.DisplayName)
	}
	if o.SelfClass != nil {
		removeInstanceLink(o, o.SelfClass)
	}
	addInstanceLink(o, newClass)
	if o.AsClass != nil {
		f.bumpEpoch()
	} else {
		invalidateOnObjectEdit(o)
	}
	return nil
}
