package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/cli/config"
	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/driver/refdriver"
	"github.com/conduit-lang/cldispatch/internal/layers/apistats"
	"github.com/conduit-lang/cldispatch/internal/layers/calltrace"
	"github.com/conduit-lang/cldispatch/internal/logging"
	"github.com/conduit-lang/cldispatch/internal/registry"
)

// session is a loader built from configuration with its drivers attached.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	reg    *registry.Registry
	loader *dispatch.Loader
	stats  *apistats.Collector
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	return config.Load(path)
}

func noColor(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool(flagNoColor)
	return v
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Builtin(), nil
	}
	return registry.Load(path)
}

// openSession builds the loader described by cfg and attaches every
// configured driver. Log output goes to logOut.
func openSession(ctx context.Context, cfg *config.Config, logOut io.Writer) (*session, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	if err != nil {
		return nil, err
	}

	reg, err := loadRegistry(cfg.Loader.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	s := &session{cfg: cfg, logger: logger, reg: reg}

	var layers []dispatch.Layer
	for _, name := range cfg.Loader.Layers {
		switch name {
		case calltrace.LayerName:
			layers = append(layers, calltrace.New(logger))
		case apistats.LayerName:
			s.stats = apistats.NewCollector()
			layers = append(layers, s.stats)
		}
	}

	s.loader, err = dispatch.New(reg,
		dispatch.WithLogger(logger),
		dispatch.WithLayers(layers...),
		dispatch.WithMaxPlatforms(cfg.Loader.MaxPlatforms),
	)
	if err != nil {
		return nil, err
	}

	for _, dc := range cfg.Drivers {
		drv, err := refdriver.New(dc, refdriver.WithRegistry(reg), refdriver.WithLogger(logger))
		if err != nil {
			s.Close()
			return nil, err
		}
		if _, err := s.loader.Attach(ctx, drv); err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to attach %s: %w", dc.Name, err)
		}
	}
	return s, nil
}

func (s *session) Close() error {
	err := s.loader.Close()
	s.logger.Sync()
	return err
}

// openStore opens the configured stats sink.
func openStore(ctx context.Context, cfg config.StatsConfig) (apistats.Store, error) {
	switch cfg.Sink {
	case config.SinkSQL:
		sink, err := apistats.OpenSQLSink(cfg.SQL.Driver, cfg.SQL.DSN, cfg.SQL.Table)
		if err != nil {
			return nil, err
		}
		if err := sink.EnsureSchema(ctx); err != nil {
			sink.Close()
			return nil, err
		}
		return sink, nil
	case config.SinkRedis:
		sink, err := apistats.NewRedisSink(apistats.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return sink, nil
	default:
		return nil, errNoSink
	}
}

var errNoSink = errors.New("no stats sink configured (set stats.sink to sql or redis)")
