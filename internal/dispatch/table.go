package dispatch

import (
	"fmt"

	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// Table holds one callable per registry slot for a single implementation.
// It is immutable once built.
type Table struct {
	reg       *registry.Registry
	slots     []cl.Func
	populated int
}

// buildTable resolves every slot from the implementation's exports.
//
// Core entry points newer than the implementation's version are left empty
// even when exported. Core entry points at or below it are required, except
// for the exempt ones, which the loader serves itself. Extension entry
// points are always optional.
func buildTable(impl *Implementation, reg *registry.Registry, layers []Layer) (*Table, error) {
	t := &Table{
		reg:   reg,
		slots: make([]cl.Func, reg.Len()),
	}

	for i := 0; i < reg.Len(); i++ {
		ep := reg.At(i)
		if !ep.Optional() && impl.version.Less(ep.Version) {
			continue
		}

		fn := impl.exports.Symbol(ep.Name)
		if fn == nil {
			if ep.Optional() || ep.Exempt {
				continue
			}
			return nil, &EntryPointUnavailableError{Implementation: impl.name, Name: ep.Name}
		}

		for j := len(layers) - 1; j >= 0; j-- {
			fn = layers[j].Wrap(impl, ep, fn)
		}
		t.slots[i] = fn
		t.populated++
	}
	return t, nil
}

// Slot returns the callable in slot i.
func (t *Table) Slot(i int) (cl.Func, error) {
	if i < 0 || i >= len(t.slots) || t.slots[i] == nil {
		return nil, ErrUnsupportedOperation
	}
	return t.slots[i], nil
}

// Lookup returns the callable for the named entry point.
func (t *Table) Lookup(name string) (cl.Func, error) {
	i, ok := t.reg.Index(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntryPoint, name)
	}
	fn, err := t.Slot(i)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return fn, nil
}

// Has reports whether the named slot is populated.
func (t *Table) Has(name string) bool {
	_, err := t.Lookup(name)
	return err == nil
}

// Len returns the number of slots, populated or not.
func (t *Table) Len() int {
	return len(t.slots)
}

// Populated returns the number of populated slots.
func (t *Table) Populated() int {
	return t.populated
}

// Names returns the populated entry point names in registry order.
func (t *Table) Names() []string {
	names := make([]string, 0, t.populated)
	for i, fn := range t.slots {
		if fn != nil {
			names = append(names, t.reg.At(i).Name)
		}
	}
	return names
}
