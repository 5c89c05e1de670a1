package objsys

import "sort"

// GetSortedMethodList enumerates visible method names for o under flags,
// deduplicated across the per-object overlay, mixins, the self-class, and
// its superclasses, sorted byte-wise (spec.md §6, §8 property 7). A
// public request filters to public names; a private request additionally
// surfaces private names declared on o's own self-class (but not private
// names reached only through a mixin or a superclass, matching spec.md
// §4.3.4's "private methods are visible only within the declaring class's
// own instances").
func GetSortedMethodList(o *Object, flags Flags) []string {
	names := make(map[string]bool)

	if o.Overlay != nil {
		for n, rec := range o.Overlay {
			if methodVisible(rec, flags, true) {
				names[n.Text] = true
			}
		}
	}
	for _, m := range o.Mixins {
		collectMethodNames(m, o, flags, names)
	}
	collectMethodNames(o.SelfClass, o, flags, names)

	out := make([]string, 0, len(names))
	for n := range names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func collectMethodNames(c *Class, o *Object, flags Flags, names map[string]bool) {
	if c == nil {
		return
	}
	isSelf := c == o.SelfClass
	for n, rec := range c.Methods {
		if methodVisible(rec, flags, isSelf) {
			names[n.Text] = true
		}
	}
	for _, m := range c.Mixins {
		collectMethodNames(m, o, flags, names)
	}
	for _, s := range c.Superclasses {
		collectMethodNames(s, o, flags, names)
	}
}

func methodVisible(rec *MethodRecord, flags Flags, isSelfClass bool) bool {
	if rec == nil || !rec.Descriptor.hasBody() {
		return false
	}
	if flags.Has(Public) {
		return rec.isPublic()
	}
	if rec.isPrivate() {
		return flags.Has(Private) && isSelfClass
	}
	return true
}
