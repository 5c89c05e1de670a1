package main

import (
	"context"
	"fmt"

	"github.com/funvibe/objcore/internal/host"
	"github.com/funvibe/objcore/internal/objsys"
)

// scenario wires up the spec.md §8 fixtures as a single small object
// graph the CLI can poke at: classes A -> B, A -> C, B&C -> D (diamond),
// with A, B and C each defining method "m" (D defines none); class K with a private method "p" and
// subclass L; class C additionally declares filter "f" wrapping "m".
type scenario struct {
	f *objsys.Foundation

	A, B, C, D, K, L *objsys.Class
	objB, objC, objD *objsys.Object
	objL             *objsys.Object
	mName            *host.Name
	pName            *host.Name
	fName            *host.Name
}

func returning(label string) *objsys.CallDescriptor {
	return &objsys.CallDescriptor{
		Kind: objsys.CallNative,
		Native: func(ctx context.Context, cc *objsys.CallContext, argv []host.Value) (host.Value, error) {
			return host.String(label), nil
		},
	}
}

func wrappingNext(prefix, suffix string) *objsys.CallDescriptor {
	return &objsys.CallDescriptor{
		Kind: objsys.CallNative,
		Native: func(ctx context.Context, cc *objsys.CallContext, argv []host.Value) (host.Value, error) {
			inner, err := cc.Next(ctx, argv)
			if err != nil {
				return nil, err
			}
			return host.String(prefix + inner.Inspect() + suffix), nil
		},
	}
}

func buildScenario() *scenario {
	f := objsys.NewFoundation()
	f.ClassOfClasses = objsys.NewClass(f, 0, "class")
	f.RootClass = objsys.NewClass(f, 0, "object")

	s := &scenario{f: f}
	s.mName = f.Names.Intern("m")
	s.pName = f.Names.Intern("p")
	s.fName = f.Names.Intern("f")

	s.A = objsys.NewClass(f, 1, "A")
	_ = f.SetSuperclasses(s.A, []*objsys.Class{f.RootClass})
	f.DefineClassMethod(s.A, s.mName, objsys.VisPublic, returning("A"))

	s.B = objsys.NewClass(f, 1, "B")
	_ = f.SetSuperclasses(s.B, []*objsys.Class{s.A})
	f.DefineClassMethod(s.B, s.mName, objsys.VisPublic, returning("B"))

	s.C = objsys.NewClass(f, 1, "C")
	_ = f.SetSuperclasses(s.C, []*objsys.Class{s.A})
	f.DefineClassMethod(s.C, s.mName, objsys.VisPublic, returning("C"))
	f.DefineClassMethod(s.C, s.fName, objsys.VisPublic, wrappingNext("[", "]"))
	f.SetClassFilters(s.C, []*host.Name{s.fName})

	s.D = objsys.NewClass(f, 1, "D")
	_ = f.SetSuperclasses(s.D, []*objsys.Class{s.B, s.C})

	s.objB = objsys.NewObject(s.B, 2, "b")
	s.objC = objsys.NewObject(s.C, 2, "c")
	s.objD = objsys.NewObject(s.D, 2, "d")

	s.K = objsys.NewClass(f, 1, "K")
	_ = f.SetSuperclasses(s.K, []*objsys.Class{f.RootClass})
	f.DefineClassMethod(s.K, s.pName, objsys.VisPrivate, returning("K-private"))

	s.L = objsys.NewClass(f, 1, "L")
	_ = f.SetSuperclasses(s.L, []*objsys.Class{s.K})
	s.objL = objsys.NewObject(s.L, 2, "l")

	f.DefineClassMethod(f.RootClass, f.UnknownName, objsys.VisPublic, &objsys.CallDescriptor{
		Kind: objsys.CallNative,
		Native: func(ctx context.Context, cc *objsys.CallContext, argv []host.Value) (host.Value, error) {
			if len(argv) == 0 {
				return host.String("unknown method"), nil
			}
			return host.String(fmt.Sprintf("unknown method %q", argv[0].Inspect())), nil
		},
	})

	return s
}

func printChain(label string, chain *objsys.Chain) {
	fmt.Printf("%s: filterLength=%d flags=%s\n", label, chain.FilterLength, chain.Flags)
	for i, e := range chain.Entries() {
		kind := "impl"
		if e.IsFilter {
			kind = "filter"
		}
		declarer := "-"
		if e.Declarer != nil {
			declarer = e.Declarer.Self.DisplayName
		}
		fmt.Printf("  [%d] %s declarer=%s\n", i, kind, declarer)
	}
}
