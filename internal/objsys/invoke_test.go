package objsys

import (
	"context"
	"testing"

	"github.com/funvibe/objcore/internal/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6 — unknown-method fallback: a request for a name with no chain
// entries past the filter prefix falls back to the "unknown" handler,
// with OOUnknownMethod (and UnknownMethod) set on the resulting chain,
// the chain marked non-cacheable (Epoch == -1), and skip shaved by one
// so the missing method name becomes visible to the handler.
func TestS6UnknownFallback(t *testing.T) {
	f := newTestFoundation()

	echoUnknown := &CallDescriptor{
		Kind: CallNative,
		Native: func(ctx context.Context, cc *CallContext, argv []host.Value) (host.Value, error) {
			require.Len(t, argv, 1)
			return argv[0], nil
		},
	}
	unknownName := f.Names.Intern("unknown")
	f.UnknownName = unknownName
	f.DefineClassMethod(f.RootClass, unknownName, VisPublic, echoUnknown)

	D := NewClass(f, 1, "D")
	require.NoError(t, f.SetSuperclasses(D, []*Class{f.RootClass}))
	d := NewObject(D, 2, "d")

	zzz := f.Names.Intern("zzz")
	cc, err := f.GetCallContext(d, zzz, Public)
	require.NoError(t, err)
	defer cc.Close()

	assert.True(t, cc.Chain().Flags.Has(UnknownMethod))
	assert.True(t, cc.Chain().Flags.Has(OOUnknownMethod))
	assert.EqualValues(t, -1, cc.Chain().Epoch)

	result, err := cc.Invoke(context.Background(), []host.Value{host.String("d"), host.String("zzz")})
	require.NoError(t, err)
	assert.Equal(t, "zzz", result.Inspect())
}

func TestUnknownFallbackStillMissingErrors(t *testing.T) {
	f := newTestFoundation()
	D := NewClass(f, 1, "D")
	require.NoError(t, f.SetSuperclasses(D, []*Class{f.RootClass}))
	d := NewObject(D, 2, "d")

	zzz := f.Names.Intern("zzz")
	_, err := f.GetCallContext(d, zzz, Public)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMethodNotFound)
}

// Next chains through successive entries; a filter wrapping an
// implementation sees the implementation's result through Next, and a
// body calling Next past the end of the chain observes Nil rather than
// an error (spec.md §4.5: "calling next past the end of the chain is
// not an error").
func TestNextPastEndReturnsNil(t *testing.T) {
	f := newTestFoundation()
	mName := f.Names.Intern("m")

	K := NewClass(f, 1, "K")
	require.NoError(t, f.SetSuperclasses(K, []*Class{f.RootClass}))
	f.DefineClassMethod(K, mName, VisPublic, nativeNext("(", ")"))

	k := NewObject(K, 2, "k")
	cc, err := f.GetCallContext(k, mName, Public)
	require.NoError(t, err)
	defer cc.Close()

	result, err := cc.Invoke(context.Background(), []host.Value{host.String("k"), host.String("m")})
	require.NoError(t, err)
	assert.Equal(t, "(nil)", result.Inspect())
}

// Invariant: invoking a chain preserves and releases every record in
// it even when the body returns an error partway through, so pinning
// never leaks across a failed call.
func TestInvokePinsAndReleasesOnError(t *testing.T) {
	f := newTestFoundation()
	mName := f.Names.Intern("m")

	boom := &CallDescriptor{
		Kind: CallNative,
		Native: func(ctx context.Context, cc *CallContext, argv []host.Value) (host.Value, error) {
			return nil, assertErr
		},
	}
	K := NewClass(f, 1, "K")
	require.NoError(t, f.SetSuperclasses(K, []*Class{f.RootClass}))
	f.DefineClassMethod(K, mName, VisPublic, boom)
	k := NewObject(K, 2, "k")

	cc, err := f.GetCallContext(k, mName, Public)
	require.NoError(t, err)
	rec := K.Methods[mName]
	before := rec.Pinned()

	_, err = cc.Invoke(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, before, rec.Pinned())
	cc.Close()
}

var assertErr = errTestBoom{}

type errTestBoom struct{}

func (errTestBoom) Error() string { return "boom" }
