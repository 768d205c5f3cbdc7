package dispatch

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/registry"
)

// Implementation is one attached driver instance. Its dispatch table is
// built on first use and shared by every caller afterwards.
type Implementation struct {
	id      uuid.UUID
	name    string
	version registry.Version
	exports Exports

	reg    *registry.Registry
	layers []Layer
	logger *zap.Logger

	table    atomic.Pointer[Table]
	initMu   sync.Mutex
	unusable atomic.Bool
	initErr  error // written under initMu before unusable is set

	// ready is set once exports is assigned; handles minted during Open
	// are resolvable before that.
	ready atomic.Bool
}

func newImplementation(name string, version registry.Version, reg *registry.Registry, layers []Layer, logger *zap.Logger) *Implementation {
	return &Implementation{
		id:      uuid.New(),
		name:    name,
		version: version,
		reg:     reg,
		layers:  layers,
		logger:  logger,
	}
}

// publish makes the driver's exports visible to Table.
func (i *Implementation) publish(exports Exports) {
	i.exports = exports
	i.ready.Store(true)
}

// ID returns the implementation's identity for this process.
func (i *Implementation) ID() uuid.UUID { return i.id }

// Name returns the driver name.
func (i *Implementation) Name() string { return i.name }

// Version returns the API version the driver claims.
func (i *Implementation) Version() registry.Version { return i.version }

// Usable reports whether the table initialized, or has not been tried yet.
func (i *Implementation) Usable() bool { return !i.unusable.Load() }

// Err returns the error that made the implementation unusable.
func (i *Implementation) Err() error {
	if !i.unusable.Load() {
		return nil
	}
	return i.initErr
}

// Table returns the dispatch table, building it on first use. Concurrent
// first callers wait for a single build. A failed build marks the
// implementation unusable and every later call gets the same error.
// Until the driver's Open has returned, Table fails with ErrNotReady.
func (i *Implementation) Table() (*Table, error) {
	if t := i.table.Load(); t != nil {
		return t, nil
	}
	if !i.ready.Load() {
		return nil, fmt.Errorf("%s: %w", i, ErrNotReady)
	}
	if i.unusable.Load() {
		return nil, i.initErr
	}

	i.initMu.Lock()
	defer i.initMu.Unlock()

	if t := i.table.Load(); t != nil {
		return t, nil
	}
	if i.unusable.Load() {
		return nil, i.initErr
	}

	t, err := buildTable(i, i.reg, i.layers)
	if err != nil {
		i.initErr = err
		i.unusable.Store(true)
		i.logger.Warn("implementation unusable",
			zap.String("implementation", i.name),
			zap.Stringer("id", i.id),
			zap.Error(err))
		return nil, err
	}

	i.table.Store(t)
	i.logger.Debug("dispatch table initialized",
		zap.String("implementation", i.name),
		zap.Stringer("version", i.version),
		zap.Int("populated", t.Populated()),
		zap.Int("slots", t.Len()))
	return t, nil
}

func (i *Implementation) String() string {
	return i.name + " " + i.version.String()
}
