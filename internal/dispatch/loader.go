package dispatch

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// Loader is the entry point callers use. It owns the handle directory, the
// attached implementations and the forwarding callables for every entry
// point in its registry.
type Loader struct {
	reg          *registry.Registry
	dir          *Directory
	logger       *zap.Logger
	layers       []Layer
	maxPlatforms int

	// Built once in New and never mutated.
	procs       map[string]cl.Func
	trampolines map[string]cl.Func

	mu     sync.RWMutex
	impls  []*Implementation
	closed bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithDirectory shares an existing directory instead of creating one.
func WithDirectory(d *Directory) Option {
	return func(l *Loader) { l.dir = d }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithLayers installs layers; the first layer sees calls first.
func WithLayers(layers ...Layer) Option {
	return func(l *Loader) { l.layers = append(l.layers, layers...) }
}

// WithMaxPlatforms caps platform enumeration.
func WithMaxPlatforms(n int) Option {
	return func(l *Loader) { l.maxPlatforms = n }
}

// New builds a loader over reg, or over registry.Builtin when reg is nil.
func New(reg *registry.Registry, opts ...Option) (*Loader, error) {
	if reg == nil {
		reg = registry.Builtin()
	}
	l := &Loader{
		reg:          reg,
		maxPlatforms: DefaultMaxPlatforms,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.dir == nil {
		l.dir = NewDirectory()
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	if l.maxPlatforms <= 0 {
		return nil, fmt.Errorf("max platforms must be positive, got %d", l.maxPlatforms)
	}

	l.procs = make(map[string]cl.Func, reg.Len())
	l.trampolines = make(map[string]cl.Func, reg.Len())
	for i := 0; i < reg.Len(); i++ {
		ep := reg.At(i)
		if ep.Exempt {
			fn, err := l.manual(ep)
			if err != nil {
				return nil, err
			}
			l.procs[ep.Name] = fn
			continue
		}
		r, ok := newRoute(i, ep)
		if !ok {
			return nil, fmt.Errorf("%w: %s has no governing handle", registry.ErrMalformedRegistry, ep.Name)
		}
		fn := l.trampoline(r)
		l.procs[ep.Name] = fn
		l.trampolines[ep.Name] = fn
	}
	return l, nil
}

// Attach opens d and makes it available for dispatch. The table is not
// built until the implementation is first used.
func (l *Loader) Attach(ctx context.Context, d Driver) (*Implementation, error) {
	l.mu.RLock()
	closed := l.closed
	l.mu.RUnlock()
	if closed {
		return nil, ErrClosed
	}

	impl := newImplementation(d.Name(), d.Version(), l.reg, l.layers, l.logger)
	exports, err := d.Open(ctx, registrar{dir: l.dir, impl: impl})
	if err != nil {
		l.dir.UnregisterAll(impl)
		return nil, fmt.Errorf("failed to open driver %s: %w", d.Name(), err)
	}
	if exports == nil {
		l.dir.UnregisterAll(impl)
		return nil, fmt.Errorf("driver %s returned no exports", d.Name())
	}
	impl.publish(exports)

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.dir.UnregisterAll(impl)
		return nil, ErrClosed
	}
	l.impls = append(l.impls, impl)
	l.mu.Unlock()

	l.logger.Info("attached implementation",
		zap.String("implementation", impl.Name()),
		zap.Stringer("version", impl.Version()),
		zap.Stringer("id", impl.ID()),
		zap.Int("handles", l.dir.Count(impl)))
	return impl, nil
}

// Detach tears impl down: it stops being enumerated and every handle it
// owns becomes invalid.
func (l *Loader) Detach(impl *Implementation) error {
	l.mu.Lock()
	idx := slices.Index(l.impls, impl)
	if idx < 0 {
		l.mu.Unlock()
		return ErrUnknownImplementation
	}
	l.impls = slices.Delete(l.impls, idx, idx+1)
	l.mu.Unlock()

	removed := l.dir.UnregisterAll(impl)
	l.logger.Info("detached implementation",
		zap.String("implementation", impl.Name()),
		zap.Stringer("id", impl.ID()),
		zap.Int("released_handles", removed))
	return nil
}

// Close detaches every implementation. Attach fails afterwards.
func (l *Loader) Close() error {
	l.mu.Lock()
	l.closed = true
	impls := l.impls
	l.impls = nil
	l.mu.Unlock()

	for _, impl := range impls {
		l.dir.UnregisterAll(impl)
	}
	l.logger.Debug("loader closed", zap.Int("implementations", len(impls)))
	return nil
}

// Call invokes the named entry point.
func (l *Loader) Call(name string, args ...any) cl.Result {
	fn, ok := l.procs[name]
	if !ok {
		return cl.Result{Code: cl.InvalidOperation, Err: fmt.Errorf("%w: %s", ErrUnknownEntryPoint, name)}
	}
	return fn(args...)
}

// Proc returns the callable for the named entry point: a trampoline or a
// manual handler.
func (l *Loader) Proc(name string) (cl.Func, bool) {
	fn, ok := l.procs[name]
	return fn, ok
}

// Implementations returns the attached implementations in attach order.
func (l *Loader) Implementations() []*Implementation {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.impls)
}

// Implementation finds an attached implementation by name.
func (l *Loader) Implementation(name string) (*Implementation, error) {
	for _, impl := range l.Implementations() {
		if impl.Name() == name {
			return impl, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownImplementation, name)
}

// Directory returns the loader's handle directory.
func (l *Loader) Directory() *Directory {
	return l.dir
}

// Registry returns the registry the loader dispatches from.
func (l *Loader) Registry() *registry.Registry {
	return l.reg
}
