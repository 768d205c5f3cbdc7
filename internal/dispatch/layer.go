package dispatch

import (
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// Layer intercepts calls into an implementation. Wrap is called once per
// populated table slot while the table is built; it returns the callable
// that replaces next in that slot.
type Layer interface {
	Name() string
	Wrap(impl *Implementation, ep registry.EntryPoint, next cl.Func) cl.Func
}

// LayerFunc adapts a function to Layer.
type LayerFunc struct {
	LayerName string
	Fn        func(impl *Implementation, ep registry.EntryPoint, next cl.Func) cl.Func
}

// Name implements Layer.
func (l LayerFunc) Name() string { return l.LayerName }

// Wrap implements Layer.
func (l LayerFunc) Wrap(impl *Implementation, ep registry.EntryPoint, next cl.Func) cl.Func {
	return l.Fn(impl, ep, next)
}
