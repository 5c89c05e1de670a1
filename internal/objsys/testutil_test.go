package objsys

import (
	"context"

	"github.com/funvibe/objcore/internal/host"
)

// newTestFoundation builds a bare foundation with a root class and a
// class-of-classes, mirroring the minimal bootstrap a host performs
// before defining any user classes.
func newTestFoundation() *Foundation {
	f := NewFoundation()
	f.ClassOfClasses = NewClass(f, 0, "class")
	f.RootClass = NewClass(f, 0, "object")
	return f
}

func native(label string) *CallDescriptor {
	return &CallDescriptor{
		Kind: CallNative,
		Native: func(ctx context.Context, cc *CallContext, argv []host.Value) (host.Value, error) {
			return host.String(label), nil
		},
	}
}

func nativeNext(prefix, suffix string) *CallDescriptor {
	return &CallDescriptor{
		Kind: CallNative,
		Native: func(ctx context.Context, cc *CallContext, argv []host.Value) (host.Value, error) {
			inner, err := cc.Next(ctx, argv)
			if err != nil {
				return nil, err
			}
			return host.String(prefix + inner.Inspect() + suffix), nil
		},
	}
}

func invokeSimple(f *Foundation, o *Object, name *host.Name, flags Flags) (host.Value, *CallContext, error) {
	cc, err := f.GetCallContext(o, name, flags)
	if err != nil {
		return nil, nil, err
	}
	v, err := cc.Invoke(context.Background(), []host.Value{host.String("recv"), host.String(name.Text)})
	return v, cc, err
}
