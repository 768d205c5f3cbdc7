package dispatch

import (
	"context"

	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// Driver is a backend that can be attached to a Loader. Open is called once
// per attachment; the driver mints its top-level handles through reg and
// returns its export surface.
type Driver interface {
	Name() string
	Version() registry.Version
	Open(ctx context.Context, reg Registrar) (Exports, error)
}

// Exports is an implementation's export surface. Symbol returns nil for
// entry points the implementation does not provide.
type Exports interface {
	Symbol(name string) cl.Func
}

// ExportMap is an Exports backed by a map.
type ExportMap map[string]cl.Func

// Symbol implements Exports.
func (m ExportMap) Symbol(name string) cl.Func {
	return m[name]
}

// Registrar is the directory as seen by one implementation. Handles
// registered through it are bound to that implementation, and it can only
// release handles that implementation owns.
type Registrar interface {
	Mint(kind cl.Kind) (cl.Handle, error)
	Register(h cl.Handle, kind cl.Kind) error
	Unregister(h cl.Handle)
	Owns(h cl.Handle, kind cl.Kind) bool
}

type registrar struct {
	dir  *Directory
	impl *Implementation
}

func (r registrar) Mint(kind cl.Kind) (cl.Handle, error) {
	return r.dir.Mint(kind, r.impl)
}

func (r registrar) Register(h cl.Handle, kind cl.Kind) error {
	return r.dir.Register(h, kind, r.impl)
}

func (r registrar) Unregister(h cl.Handle) {
	r.dir.unregisterOwned(h, r.impl)
}

func (r registrar) Owns(h cl.Handle, kind cl.Kind) bool {
	impl, err := r.dir.Resolve(h, kind)
	return err == nil && impl == r.impl
}
