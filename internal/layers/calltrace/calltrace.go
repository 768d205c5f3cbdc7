// Package calltrace logs every call that reaches an implementation.
package calltrace

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// LayerName is the name the tracer reports as a dispatch layer.
const LayerName = "calltrace"

// Tracer is a dispatch.Layer writing one entry per call. Successful calls
// are logged at the configured level, failures at Warn.
type Tracer struct {
	logger *zap.Logger
	level  zapcore.Level
}

var _ dispatch.Layer = (*Tracer)(nil)

// New returns a tracer logging at Debug.
func New(logger *zap.Logger) *Tracer {
	return NewWithLevel(logger, zapcore.DebugLevel)
}

// NewWithLevel returns a tracer logging successful calls at level.
func NewWithLevel(logger *zap.Logger, level zapcore.Level) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracer{logger: logger.Named(LayerName), level: level}
}

// Name implements dispatch.Layer.
func (t *Tracer) Name() string { return LayerName }

// Wrap implements dispatch.Layer. Slots are left untouched when the logger
// has no level enabled that a call could be logged at.
func (t *Tracer) Wrap(impl *dispatch.Implementation, ep registry.EntryPoint, next cl.Func) cl.Func {
	if !t.logger.Core().Enabled(t.level) && !t.logger.Core().Enabled(zapcore.WarnLevel) {
		return next
	}

	logger := t.logger.With(
		zap.String("implementation", impl.Name()),
		zap.String("entry_point", ep.Name),
	)
	return func(args ...any) cl.Result {
		start := time.Now()
		res := next(args...)
		elapsed := time.Since(start)

		if res.Code != cl.Success {
			logger.Warn("call failed",
				zap.Int("args", len(args)),
				zap.Stringer("code", res.Code),
				zap.Duration("elapsed", elapsed))
			return res
		}
		if ce := logger.Check(t.level, "call"); ce != nil {
			ce.Write(zap.Int("args", len(args)), zap.Duration("elapsed", elapsed))
		}
		return res
	}
}
