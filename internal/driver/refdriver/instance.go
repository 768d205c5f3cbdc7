package refdriver

import (
	"sync"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// object is any resource the driver hands out a handle for.
type object struct {
	kind cl.Kind
	refs int

	platform cl.Handle   // devices
	index    int         // devices
	devices  []cl.Handle // contexts
	context  cl.Handle   // queues, buffers
	device   cl.Handle   // queues
	data     []byte      // buffers
	done     bool        // events
}

// instance is the state behind one Open call.
type instance struct {
	drv *Driver
	r   dispatch.Registrar

	platforms []cl.Handle
	devices   []cl.Handle

	mu      sync.Mutex
	objects map[cl.Handle]*object
}

func newInstance(d *Driver, r dispatch.Registrar) *instance {
	return &instance{
		drv:     d,
		r:       r,
		objects: make(map[cl.Handle]*object),
	}
}

// mint registers a new handle for obj with a reference count of one.
func (in *instance) mint(kind cl.Kind, obj *object) (cl.Handle, error) {
	if obj == nil {
		obj = &object{}
	}
	obj.kind = kind
	obj.refs = 1

	h, err := in.r.Mint(kind)
	if err != nil {
		return 0, err
	}
	in.mu.Lock()
	in.objects[h] = obj
	in.mu.Unlock()
	return h, nil
}

// get returns the live object for h if it has the expected kind.
func (in *instance) get(h cl.Handle, kind cl.Kind) (*object, bool) {
	in.mu.Lock()
	defer in.mu.Unlock()
	obj, ok := in.objects[h]
	if !ok || obj.kind != kind {
		return nil, false
	}
	return obj, true
}

func (in *instance) retain(h cl.Handle, kind cl.Kind) cl.ErrorCode {
	in.mu.Lock()
	defer in.mu.Unlock()
	obj, ok := in.objects[h]
	if !ok || obj.kind != kind {
		return kind.InvalidCode()
	}
	obj.refs++
	return cl.Success
}

// release drops one reference; the handle is unregistered from the loader
// when the count reaches zero.
func (in *instance) release(h cl.Handle, kind cl.Kind) cl.ErrorCode {
	in.mu.Lock()
	obj, ok := in.objects[h]
	if !ok || obj.kind != kind {
		in.mu.Unlock()
		return kind.InvalidCode()
	}
	obj.refs--
	gone := obj.refs == 0
	if gone {
		delete(in.objects, h)
	}
	in.mu.Unlock()

	if gone {
		in.r.Unregister(h)
	}
	return cl.Success
}

func (in *instance) refCount(h cl.Handle) int {
	in.mu.Lock()
	defer in.mu.Unlock()
	if obj, ok := in.objects[h]; ok {
		return obj.refs
	}
	return 0
}

// devicesOf returns the devices of platform in creation order.
func (in *instance) devicesOf(platform cl.Handle) []cl.Handle {
	in.mu.Lock()
	defer in.mu.Unlock()
	var out []cl.Handle
	for _, h := range in.devices {
		if in.objects[h].platform == platform {
			out = append(out, h)
		}
	}
	return out
}
