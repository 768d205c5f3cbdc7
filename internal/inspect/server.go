// Package inspect serves a read-only HTTP view of a running loader: the
// entry-point table, attached implementations, enumerated platforms and
// call statistics.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/layers/apistats"
)

// Config holds server configuration
type Config struct {
	// Address is the listen address (e.g., ":7070")
	Address string `mapstructure:"addr" yaml:"addr"`

	// Timeouts
	ReadTimeout       time.Duration `mapstructure:"read_timeout" yaml:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`

	// StreamInterval is how often /api/stats/stream pushes a snapshot
	StreamInterval time.Duration `mapstructure:"stream_interval" yaml:"stream_interval"`

	// AuthSecret, when set, requires an HS256 bearer token on every route
	AuthSecret string `mapstructure:"auth_secret" yaml:"auth_secret,omitempty"`

	// Profiling mounts pprof under /debug. Keep it off on shared hosts.
	Profiling bool `mapstructure:"pprof" yaml:"pprof"`
}

// DefaultConfig returns the server defaults.
func DefaultConfig() Config {
	return Config{
		Address:           ":7070",
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   10 * time.Second,
		StreamInterval:    time.Second,
	}
}

// Server exposes a loader over HTTP.
type Server struct {
	cfg      Config
	loader   *dispatch.Loader
	stats    *apistats.Collector
	logger   *zap.Logger
	upgrader websocket.Upgrader
	auth     *TokenAuth

	mu       sync.Mutex
	listener net.Listener
}

// New creates a server. stats may be nil, in which case the stats routes
// answer 404.
func New(loader *dispatch.Loader, stats *apistats.Collector, cfg Config, logger *zap.Logger) (*Server, error) {
	if loader == nil {
		return nil, errors.New("inspect: loader cannot be nil")
	}
	if cfg.StreamInterval <= 0 {
		return nil, fmt.Errorf("inspect: stream interval must be positive, got %s", cfg.StreamInterval)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		cfg:    cfg,
		loader: loader,
		stats:  stats,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
	if cfg.AuthSecret != "" {
		s.auth, _ = NewTokenAuth(cfg.AuthSecret, 0)
	}
	return s, nil
}

// Handler returns the routed API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Route("/api", func(r chi.Router) {
		if s.auth != nil {
			r.Use(s.auth.Middleware)
		}
		r.Get("/entrypoints", s.listEntryPoints)
		r.Get("/entrypoints/{name}", s.getEntryPoint)
		r.Get("/implementations", s.listImplementations)
		r.Get("/platforms", s.listPlatforms)
		r.Get("/stats", s.getStats)
		r.Get("/stats/stream", s.streamStats)
	})

	if s.cfg.Profiling {
		r.Group(func(r chi.Router) {
			if s.auth != nil {
				r.Use(s.auth.Middleware)
			}
			r.Mount("/debug", middleware.Profiler())
		})
	}
	return r
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then shuts down
// gracefully. Open stats streams observe the cancellation through their
// request context.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	httpServer := &http.Server{
		Handler:           s.Handler(),
		ReadTimeout:       s.cfg.ReadTimeout,
		IdleTimeout:       s.cfg.IdleTimeout,
		ReadHeaderTimeout: s.cfg.ReadHeaderTimeout,
		MaxHeaderBytes:    1 << 20,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("inspect server listening", zap.String("addr", ln.Addr().String()))
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("inspect server stopped")
	return nil
}

// Addr returns the listener's address once serving, else the configured one.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.cfg.Address
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}
