package detect

import (
	"context"
	"errors"
	"fmt"

	"github.com/dop251/goja"
)

// Script drives the head from a JavaScript model instead of a camera, for
// autoplay demos and deterministic testing. The snippet must define a
// function head(t) returning {x, y, w, h} in source-frame coordinates, or
// null on a frame with no face.
//
// A Script is not safe for concurrent use; the frame driver is its only
// intended caller.
type Script struct {
	vm   *goja.Runtime
	head goja.Callable
	tick int
}

// NewScript compiles src and resolves its head function.
func NewScript(src string) (*Script, error) {
	vm := goja.New()
	if _, err := vm.RunString(src); err != nil {
		return nil, fmt.Errorf("detector script: %w", err)
	}
	fn, ok := goja.AssertFunction(vm.Get("head"))
	if !ok {
		return nil, errors.New("detector script: head(t) is not defined")
	}
	return &Script{vm: vm, head: fn}, nil
}

// Detect implements Detector by evaluating head(t) for the current tick.
func (s *Script) Detect(ctx context.Context) (Box, bool, error) {
	v, err := s.head(goja.Undefined(), s.vm.ToValue(s.tick))
	s.tick++
	if err != nil {
		return Box{}, false, fmt.Errorf("detector script: %w", err)
	}
	if goja.IsNull(v) || goja.IsUndefined(v) {
		return Box{}, false, nil
	}

	obj := v.ToObject(s.vm)
	var box Box
	for _, f := range []struct {
		key string
		dst *float64
	}{
		{"x", &box.Left},
		{"y", &box.Top},
		{"w", &box.Width},
		{"h", &box.Height},
	} {
		fv := obj.Get(f.key)
		if fv == nil || goja.IsUndefined(fv) {
			return Box{}, false, fmt.Errorf("detector script: head(t) result lacks %q", f.key)
		}
		*f.dst = fv.ToFloat()
	}
	return box, true, nil
}
