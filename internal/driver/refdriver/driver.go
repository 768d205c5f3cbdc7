// Package refdriver is a software implementation of the compute API that
// runs entirely in process. It exists to exercise the loader: it mints real
// handles, keeps reference counts, and moves bytes between host slices and
// buffers, but it executes no kernels.
package refdriver

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/conduit-lang/cldispatch/internal/dispatch"
	"github.com/conduit-lang/cldispatch/internal/registry"
	"github.com/conduit-lang/cldispatch/pkg/cl"
)

// Config describes one reference driver instance.
type Config struct {
	Name      string   `mapstructure:"name" yaml:"name"`
	Vendor    string   `mapstructure:"vendor" yaml:"vendor"`
	Version   string   `mapstructure:"version" yaml:"version"`
	Platforms int      `mapstructure:"platforms" yaml:"platforms"`
	Devices   int      `mapstructure:"devices" yaml:"devices"`
	Omit      []string `mapstructure:"omit" yaml:"omit,omitempty"`
}

// DefaultConfig returns a single-platform, single-device 3.0 driver.
func DefaultConfig() Config {
	return Config{
		Name:      "reference",
		Vendor:    "cldispatch",
		Version:   "3.0",
		Platforms: 1,
		Devices:   1,
	}
}

// Driver implements dispatch.Driver.
type Driver struct {
	cfg     Config
	version registry.Version
	reg     *registry.Registry
	logger  *zap.Logger
}

// Option configures a Driver.
type Option func(*Driver)

// WithRegistry selects the registry the export table is built from.
func WithRegistry(reg *registry.Registry) Option {
	return func(d *Driver) { d.reg = reg }
}

// WithLogger sets the driver's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Driver) { d.logger = logger }
}

// New validates cfg and creates a driver.
func New(cfg Config, opts ...Option) (*Driver, error) {
	if cfg.Name == "" {
		return nil, errors.New("driver name is required")
	}
	version, err := registry.ParseVersion(cfg.Version)
	if err != nil {
		return nil, fmt.Errorf("driver %s: %w", cfg.Name, err)
	}
	if cfg.Platforms < 0 || cfg.Devices < 0 {
		return nil, fmt.Errorf("driver %s: platform and device counts must not be negative", cfg.Name)
	}

	d := &Driver{
		cfg:     cfg,
		version: version,
		reg:     registry.Builtin(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Name implements dispatch.Driver.
func (d *Driver) Name() string { return d.cfg.Name }

// Version implements dispatch.Driver.
func (d *Driver) Version() registry.Version { return d.version }

// Config returns the configuration the driver was built from.
func (d *Driver) Config() Config { return d.cfg }

// Open mints the driver's platforms and devices and returns its exports.
// Each call produces an independent instance.
func (d *Driver) Open(ctx context.Context, r dispatch.Registrar) (dispatch.Exports, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	inst := newInstance(d, r)
	for p := 0; p < d.cfg.Platforms; p++ {
		platform, err := inst.mint(cl.KindPlatform, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to mint platform: %w", err)
		}
		inst.platforms = append(inst.platforms, platform)
		for dev := 0; dev < d.cfg.Devices; dev++ {
			device, err := inst.mint(cl.KindDevice, &object{platform: platform, index: dev})
			if err != nil {
				return nil, fmt.Errorf("failed to mint device: %w", err)
			}
			inst.devices = append(inst.devices, device)
		}
	}

	exports := inst.exports()
	d.logger.Debug("reference driver opened",
		zap.String("driver", d.cfg.Name),
		zap.Stringer("version", d.version),
		zap.Int("platforms", len(inst.platforms)),
		zap.Int("devices", len(inst.devices)),
		zap.Int("exports", len(exports)))
	return exports, nil
}
