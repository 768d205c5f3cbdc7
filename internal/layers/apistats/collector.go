// Package apistats counts calls and accumulates time spent in each entry
// point of each implementation, and flushes the totals to a Sink.
package apistats

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// LayerName is the name the collector reports as a dispatch layer.
const LayerName = "apistats"

// Stat is the cumulative record for one implementation entry point.
type Stat struct {
	Implementation string        `json:"implementation"`
	EntryPoint     string        `json:"entry_point"`
	Calls          uint64        `json:"calls"`
	Duration       time.Duration `json:"duration_ns"`
}

// Average returns the mean time per call.
func (s Stat) Average() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Duration / time.Duration(s.Calls)
}

// Sink persists snapshots. Writes carry cumulative totals, so a sink
// overwrites what it stored for the same implementation and entry point.
type Sink interface {
	Write(ctx context.Context, stats []Stat) error
}

// Store is a Sink that can be read back.
type Store interface {
	Sink
	Read(ctx context.Context) ([]Stat, error)
	Close() error
}

var (
	_ Store = (*SQLSink)(nil)
	_ Store = (*RedisSink)(nil)
)

type key struct {
	impl string
	ep   string
}

type counter struct {
	calls atomic.Uint64
	nanos atomic.Int64
}

// Collector is a dispatch.Layer. Counters are allocated when a table slot
// is wrapped, so the call path only touches atomics.
type Collector struct {
	mu       sync.RWMutex
	counters map[key]*counter
}

var _ dispatch.Layer = (*Collector)(nil)

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{counters: make(map[key]*counter)}
}

// Name implements dispatch.Layer.
func (c *Collector) Name() string { return LayerName }

// Wrap implements dispatch.Layer.
func (c *Collector) Wrap(impl *dispatch.Implementation, ep registry.EntryPoint, next cl.Func) cl.Func {
	ctr := c.counter(key{impl: impl.Name(), ep: ep.Name})
	return func(args ...any) cl.Result {
		start := time.Now()
		res := next(args...)
		ctr.nanos.Add(int64(time.Since(start)))
		ctr.calls.Add(1)
		return res
	}
}

func (c *Collector) counter(k key) *counter {
	c.mu.RLock()
	ctr, ok := c.counters[k]
	c.mu.RUnlock()
	if ok {
		return ctr
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctr, ok = c.counters[k]; ok {
		return ctr
	}
	ctr = &counter{}
	c.counters[k] = ctr
	return ctr
}

// Snapshot returns the entry points that have been called at least once,
// ordered by implementation then entry point name.
func (c *Collector) Snapshot() []Stat {
	c.mu.RLock()
	stats := make([]Stat, 0, len(c.counters))
	for k, ctr := range c.counters {
		calls := ctr.calls.Load()
		if calls == 0 {
			continue
		}
		stats = append(stats, Stat{
			Implementation: k.impl,
			EntryPoint:     k.ep,
			Calls:          calls,
			Duration:       time.Duration(ctr.nanos.Load()),
		})
	}
	c.mu.RUnlock()

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Implementation != stats[j].Implementation {
			return stats[i].Implementation < stats[j].Implementation
		}
		return stats[i].EntryPoint < stats[j].EntryPoint
	})
	return stats
}

// Reset zeroes every counter. Wrapped slots keep reporting into them.
func (c *Collector) Reset() {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ctr := range c.counters {
		ctr.calls.Store(0)
		ctr.nanos.Store(0)
	}
}

// Flush writes the current snapshot to sink. An empty snapshot is not
// written.
func (c *Collector) Flush(ctx context.Context, sink Sink) error {
	stats := c.Snapshot()
	if len(stats) == 0 {
		return nil
	}
	return sink.Write(ctx, stats)
}
