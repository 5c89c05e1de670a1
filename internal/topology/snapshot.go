// Package topology renders a read-only, point-in-time view of a
// foundation's relationship registry for humans (cmd/objcore topology).
// It is diagnostic tooling only: the object system itself
// (internal/objsys) never imports this package or yaml, honoring
// spec.md's "no wire protocol, no file format" for the core's own
// persisted state.
package topology

import "github.com/funvibe/objcore/internal/objsys"

// ClassSnapshot is one class's topology at the moment of capture.
type ClassSnapshot struct {
	Name          string   `yaml:"name"`
	Superclasses  []string `yaml:"superclasses,omitempty"`
	Mixins        []string `yaml:"mixins,omitempty"`
	Filters       []string `yaml:"filters,omitempty"`
	InstanceCount int      `yaml:"instances"`
	SubclassCount int      `yaml:"subclasses"`
}

// Snapshot is the top-level document rendered by cmd/objcore.
type Snapshot struct {
	FoundationID string           `yaml:"foundation_id"`
	Epoch        int64            `yaml:"epoch"`
	Classes      []ClassSnapshot  `yaml:"classes"`
}

// Capture walks every class passed in classes (typically the
// foundation's root class) and every class reachable from them through
// subclass and mixin-subclass links, and renders their current topology.
func Capture(f *objsys.Foundation, classes []*objsys.Class) Snapshot {
	snap := Snapshot{FoundationID: f.ID.String(), Epoch: f.Epoch}
	seen := make(map[*objsys.Class]bool)

	var visit func(c *objsys.Class)
	visit = func(c *objsys.Class) {
		if c == nil || seen[c] {
			return
		}
		seen[c] = true

		cs := ClassSnapshot{
			Name:          c.Self.DisplayName,
			InstanceCount: len(c.Instances),
			SubclassCount: len(c.Subclasses),
		}
		for _, s := range c.Superclasses {
			cs.Superclasses = append(cs.Superclasses, s.Self.DisplayName)
		}
		for _, m := range c.Mixins {
			cs.Mixins = append(cs.Mixins, m.Self.DisplayName)
		}
		for _, fn := range c.Filters {
			cs.Filters = append(cs.Filters, fn.Text)
		}
		snap.Classes = append(snap.Classes, cs)

		for sub := range c.Subclasses {
			visit(sub)
		}
		for sub := range c.MixinSubclasses {
			visit(sub)
		}
	}

	for _, c := range classes {
		visit(c)
	}
	return snap
}
