package dispatch

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// fakeDriver exports every entry point its version covers. Object-returning
// entry points mint a handle of the returned kind, release entry points drop
// their handle, everything else answers "<driver>/<entry point>".
type fakeDriver struct {
	name      string
	version   registry.Version
	platforms int
	omit      map[string]bool
	noICD     bool
	extra     []cl.Handle
	openErr   error
	ungated   bool

	mu        sync.Mutex
	registrar Registrar
	minted    []cl.Handle
	lookups   atomic.Int64
}

func newFakeDriver(name, version string, platforms int) *fakeDriver {
	return &fakeDriver{
		name:      name,
		version:   registry.MustParseVersion(version),
		platforms: platforms,
		omit:      map[string]bool{},
	}
}

func (d *fakeDriver) Name() string              { return d.name }
func (d *fakeDriver) Version() registry.Version { return d.version }

func (d *fakeDriver) Open(_ context.Context, reg Registrar) (Exports, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.registrar = reg

	for i := 0; i < d.platforms; i++ {
		h, err := reg.Mint(cl.KindPlatform)
		if err != nil {
			return nil, err
		}
		d.minted = append(d.minted, h)
	}
	if d.openErr != nil {
		return nil, d.openErr
	}

	exports := ExportMap{}
	for _, ep := range registry.Builtin().Entries() {
		if d.omit[ep.Name] {
			continue
		}
		if !ep.Optional() && d.version.Less(ep.Version) && !d.ungated {
			continue
		}
		exports[ep.Name] = d.export(ep)
	}
	return &countingExports{exports: exports, lookups: &d.lookups}, nil
}

func (d *fakeDriver) export(ep registry.EntryPoint) cl.Func {
	switch ep.Name {
	case "clGetPlatformIDs", "clIcdGetPlatformIDsKHR":
		return d.listPlatforms
	case "clGetExtensionFunctionAddressForPlatform":
		return func(args ...any) cl.Result {
			if name, _ := args[1].(string); name == "clIcdGetPlatformIDsKHR" && !d.noICD {
				return cl.Ok(cl.Func(d.listPlatforms))
			}
			return cl.Result{Code: cl.Success}
		}
	}

	if kind, ok := cl.KindForType(ep.Return); ok {
		errIdx := ep.ParamIndex("errcode_ret")
		return func(args ...any) cl.Result {
			h, err := d.registrar.Mint(kind)
			if err != nil {
				return cl.Fail(cl.OutOfHostMemory)
			}
			if errIdx >= 0 {
				cl.SetCode(args[errIdx], cl.Success)
			}
			return cl.Ok(h)
		}
	}
	if strings.HasPrefix(ep.Name, "clRelease") {
		return func(args ...any) cl.Result {
			d.registrar.Unregister(args[0].(cl.Handle))
			return cl.Ok(d.name + "/" + ep.Name)
		}
	}
	return func(args ...any) cl.Result {
		return cl.Ok(d.name + "/" + ep.Name)
	}
}

func (d *fakeDriver) listPlatforms(args ...any) cl.Result {
	d.mu.Lock()
	all := append(append([]cl.Handle(nil), d.minted...), d.extra...)
	d.mu.Unlock()

	n, _ := cl.Uint32(args[0])
	out, _ := cl.Handles(args[1])
	copy(out[:min(int(n), len(out))], all)
	if p, ok := args[2].(*uint32); ok && p != nil {
		*p = uint32(len(all))
	}
	return cl.Result{Code: cl.Success}
}

func (d *fakeDriver) mint(kind cl.Kind) cl.Handle {
	h, err := d.registrar.Mint(kind)
	if err != nil {
		panic(err)
	}
	return h
}

func (d *fakeDriver) platform(i int) cl.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.minted[i]
}

type countingExports struct {
	exports ExportMap
	lookups *atomic.Int64
}

func (c *countingExports) Symbol(name string) cl.Func {
	c.lookups.Add(1)
	return c.exports.Symbol(name)
}

func newTestLoader(t *testing.T, opts ...Option) *Loader {
	t.Helper()
	l, err := New(registry.Builtin(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return l
}

func attach(t *testing.T, l *Loader, d Driver) *Implementation {
	t.Helper()
	impl, err := l.Attach(context.Background(), d)
	if err != nil {
		t.Fatalf("Attach(%s): %v", d.Name(), err)
	}
	return impl
}
