package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/cli/config"
	"github.com/conduit-lang/cldispatch/internal/cli/ui"
	"github.com/conduit-lang/cldispatch/internal/inspect"
	"github.com/conduit-lang/cldispatch/internal/layers/apistats"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Attach the configured drivers and serve the inspection API",
		Long: `Attach every configured driver and serve a read-only HTTP API over the
running loader:

  GET /api/entrypoints          entry points and their governors
  GET /api/implementations      attached implementations
  GET /api/platforms            enumerated platforms
  GET /api/stats                call statistics (apistats layer)
  GET /api/stats/stream         the same, pushed over a websocket

With stats.sink set, statistics are flushed every stats.flush_interval and
once more on shutdown.

Examples:
  cldispatch serve
  cldispatch serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ConfigError(err.Error(), noColor(cmd)))
				return err
			}
			if addr != "" {
				cfg.Server.Address = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, cmd)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides server.addr)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, cmd *cobra.Command) error {
	s, err := openSession(ctx, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer s.Close()

	if cfg.Stats.Sink != config.SinkNone && cfg.Stats.Sink != "" && s.stats != nil {
		store, err := openStore(ctx, cfg.Stats)
		if err != nil {
			return err
		}
		defer store.Close()

		flushCtx, cancelFlush := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			flushLoop(flushCtx, s.stats, store, cfg.Stats.FlushInterval, s.logger)
		}()
		defer func() {
			cancelFlush()
			<-done
		}()
	}

	srv, err := inspect.New(s.loader, s.stats, cfg.Server, s.logger)
	if err != nil {
		return err
	}
	ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("serving %d implementations on %s", len(s.loader.Implementations()), cfg.Server.Address), noColor(cmd))
	return srv.ListenAndServe(ctx)
}

// flushLoop writes the collector to sink every interval and once more when
// ctx ends.
func flushLoop(ctx context.Context, c *apistats.Collector, sink apistats.Sink, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	flush := func(ctx context.Context) {
		if err := c.Flush(ctx, sink); err != nil {
			logger.Warn("stats flush failed", zap.Error(err))
		}
	}

	for {
		select {
		case <-ticker.C:
			flush(ctx)
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			flush(final)
			cancel()
			return
		}
	}
}
