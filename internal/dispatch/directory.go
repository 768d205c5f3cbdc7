package dispatch

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/conduit-lang/cldispatch/pkg/cl"
)

type binding struct {
	kind cl.Kind
	impl *Implementation
}

// Directory maps live handles to the implementation responsible for them.
// Mutations are serialized; lookups run concurrently under a read lock, so a
// Resolve never observes a partially inserted association.
type Directory struct {
	mu      sync.RWMutex
	handles map[cl.Handle]binding

	// next is the last minted handle value. Minted values are never reused.
	next atomic.Uint64
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{handles: make(map[cl.Handle]binding)}
}

// Register associates h with impl under kind.
func (d *Directory) Register(h cl.Handle, kind cl.Kind, impl *Implementation) error {
	if h == 0 {
		return ErrZeroHandle
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if impl == nil {
		return ErrNilImplementation
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if existing, ok := d.handles[h]; ok {
		return fmt.Errorf("%w: %s is a %s", ErrHandleInUse, h, existing.kind)
	}
	d.handles[h] = binding{kind: kind, impl: impl}
	return nil
}

// Mint allocates a fresh handle value and registers it.
func (d *Directory) Mint(kind cl.Kind, impl *Implementation) (cl.Handle, error) {
	for {
		h := cl.Handle(d.next.Add(1))
		err := d.Register(h, kind, impl)
		if err == nil {
			return h, nil
		}
		if !isInUse(err) {
			return 0, err
		}
		// Someone registered this value by hand; try the next one.
	}
}

// Resolve returns the implementation bound to h. It fails with an
// *InvalidHandleError when h is unknown, released, or of another kind.
func (d *Directory) Resolve(h cl.Handle, kind cl.Kind) (*Implementation, error) {
	d.mu.RLock()
	b, ok := d.handles[h]
	d.mu.RUnlock()

	if !ok || b.kind != kind {
		return nil, &InvalidHandleError{Kind: kind, Handle: h}
	}
	return b.impl, nil
}

// KindOf reports the kind h was registered under.
func (d *Directory) KindOf(h cl.Handle) (cl.Kind, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	b, ok := d.handles[h]
	return b.kind, ok
}

// Unregister removes h. Releasing an absent handle is a no-op.
func (d *Directory) Unregister(h cl.Handle) {
	d.mu.Lock()
	delete(d.handles, h)
	d.mu.Unlock()
}

// unregisterOwned removes h only if it belongs to impl.
func (d *Directory) unregisterOwned(h cl.Handle, impl *Implementation) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.handles[h]
	if !ok || b.impl != impl {
		return false
	}
	delete(d.handles, h)
	return true
}

// UnregisterAll drops every handle owned by impl and returns how many were
// removed.
func (d *Directory) UnregisterAll(impl *Implementation) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	removed := 0
	for h, b := range d.handles {
		if b.impl == impl {
			delete(d.handles, h)
			removed++
		}
	}
	return removed
}

// Len returns the number of live handles.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handles)
}

// Count returns the number of live handles owned by impl.
func (d *Directory) Count(impl *Implementation) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, b := range d.handles {
		if b.impl == impl {
			n++
		}
	}
	return n
}

func isInUse(err error) bool {
	return errors.Is(err, ErrHandleInUse)
}
