package objsys

import (
	"testing"

	"github.com/funvibe/objcore/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1 — simple override: B overrides A's m; the chain for B's instance is
// [B::m, A::m] (the superclass walk still reaches A), but only B::m runs
// because its body never calls next.
func TestS1SimpleOverride(t *testing.T) {
	f := newTestFoundation()
	mName := f.Names.Intern("m")

	A := NewClass(f, 1, "A")
	require.NoError(t, f.SetSuperclasses(A, []*Class{f.RootClass}))
	f.DefineClassMethod(A, mName, VisPublic, native("A"))

	B := NewClass(f, 1, "B")
	require.NoError(t, f.SetSuperclasses(B, []*Class{A}))
	f.DefineClassMethod(B, mName, VisPublic, native("B"))

	b := NewObject(B, 2, "b")

	cc, err := f.GetCallContext(b, mName, Public)
	require.NoError(t, err)
	defer cc.Close()

	require.Equal(t, 2, cc.Chain().Len())
	assert.Same(t, B.Methods[mName], cc.Chain().At(0).Record)
	assert.Same(t, A.Methods[mName], cc.Chain().At(1).Record)

	result, _, err := invokeSimple(f, b, mName, Public)
	require.NoError(t, err)
	assert.Equal(t, "B", result.Inspect())
}

// S2 — filter wraps implementation.
func TestS2FilterWrapsImplementation(t *testing.T) {
	f := newTestFoundation()
	mName := f.Names.Intern("m")
	fName := f.Names.Intern("f")

	C := NewClass(f, 1, "C")
	require.NoError(t, f.SetSuperclasses(C, []*Class{f.RootClass}))
	f.DefineClassMethod(C, mName, VisPublic, native("impl"))
	f.DefineClassMethod(C, fName, VisPublic, nativeNext("[", "]"))
	f.SetClassFilters(C, []*host.Name{fName})

	c := NewObject(C, 2, "c")

	cc, err := f.GetCallContext(c, mName, Public)
	require.NoError(t, err)
	defer cc.Close()

	require.Equal(t, 2, cc.Chain().Len())
	assert.Equal(t, 1, cc.Chain().FilterLength)
	assert.True(t, cc.Chain().At(0).IsFilter)
	assert.Same(t, C, cc.Chain().At(0).Declarer)
	assert.False(t, cc.Chain().At(1).IsFilter)

	result, _, err := invokeSimple(f, c, mName, Public)
	require.NoError(t, err)
	assert.Equal(t, "[impl]", result.Inspect())
}

// S3 — diamond with lateness: D(B,C), B:A, C:A; building for D yields
// [B::m, C::m, A::m] — A reached from both branches collapses to one
// entry positioned after both B and C.
func TestS3DiamondLateness(t *testing.T) {
	f := newTestFoundation()
	mName := f.Names.Intern("m")

	A := NewClass(f, 1, "A")
	require.NoError(t, f.SetSuperclasses(A, []*Class{f.RootClass}))
	f.DefineClassMethod(A, mName, VisPublic, nativeNext("A(", ")"))

	B := NewClass(f, 1, "B")
	require.NoError(t, f.SetSuperclasses(B, []*Class{A}))
	f.DefineClassMethod(B, mName, VisPublic, nativeNext("B(", ")"))

	C := NewClass(f, 1, "C")
	require.NoError(t, f.SetSuperclasses(C, []*Class{A}))
	f.DefineClassMethod(C, mName, VisPublic, nativeNext("C(", ")"))

	D := NewClass(f, 1, "D")
	require.NoError(t, f.SetSuperclasses(D, []*Class{B, C}))

	d := NewObject(D, 2, "d")

	cc, err := f.GetCallContext(d, mName, Public)
	require.NoError(t, err)
	defer cc.Close()

	require.Equal(t, 3, cc.Chain().Len())
	assert.Same(t, B.Methods[mName], cc.Chain().At(0).Record)
	assert.Same(t, C.Methods[mName], cc.Chain().At(1).Record)
	assert.Same(t, A.Methods[mName], cc.Chain().At(2).Record)
}

func TestCircularSuperclassRejected(t *testing.T) {
	f := newTestFoundation()
	A := NewClass(f, 1, "A")
	require.NoError(t, f.SetSuperclasses(A, []*Class{f.RootClass}))
	B := NewClass(f, 1, "B")
	require.NoError(t, f.SetSuperclasses(B, []*Class{A}))

	err := f.SetSuperclasses(A, []*Class{B})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCircularDependency)
	// rejected: A's superclasses are unchanged.
	assert.Equal(t, []*Class{f.RootClass}, A.Superclasses)
}
