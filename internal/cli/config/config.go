package config

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/conduit-lang/cldispatch/internal/driver/refdriver"
	"github.com/conduit-lang/cldispatch/internal/inspect"
	"github.com/conduit-lang/cldispatch/internal/layers/apistats"
	"github.com/conduit-lang/cldispatch/internal/layers/calltrace"
	"github.com/conduit-lang/cldispatch/internal/logging"
)

const (
	// FileName is the config file looked up in the working directory.
	FileName = "cldispatch.yaml"
	// EnvPrefix prefixes environment overrides, e.g. CLDISPATCH_LOG_LEVEL.
	EnvPrefix = "CLDISPATCH"
)

// Stats sink kinds.
const (
	SinkNone  = "none"
	SinkSQL   = "sql"
	SinkRedis = "redis"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the cldispatch configuration.
type Config struct {
	Log     LogConfig          `mapstructure:"log"`
	Loader  LoaderConfig       `mapstructure:"loader"`
	Drivers []refdriver.Config `mapstructure:"drivers"`
	Stats   StatsConfig        `mapstructure:"stats"`
	Server  inspect.Config     `mapstructure:"server"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoaderConfig configures the dispatch loader.
type LoaderConfig struct {
	// Registry is an XML registry path; empty means the built-in table
	Registry     string   `mapstructure:"registry"`
	Layers       []string `mapstructure:"layers"`
	MaxPlatforms int      `mapstructure:"max_platforms"`
}

// StatsConfig selects where call statistics are flushed.
type StatsConfig struct {
	Sink          string        `mapstructure:"sink"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
	SQL           SQLConfig     `mapstructure:"sql"`
	Redis         RedisConfig   `mapstructure:"redis"`
}

// SQLConfig configures the SQL sink.
type SQLConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
	Table  string `mapstructure:"table"`
}

// RedisConfig configures the Redis sink.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	server := inspect.DefaultConfig()
	redis := apistats.DefaultRedisConfig()
	driver := refdriver.DefaultConfig()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)

	v.SetDefault("loader.registry", "")
	v.SetDefault("loader.layers", []string{})
	v.SetDefault("loader.max_platforms", 64)

	v.SetDefault("drivers", []map[string]any{{
		"name":      driver.Name,
		"vendor":    driver.Vendor,
		"version":   driver.Version,
		"platforms": driver.Platforms,
		"devices":   driver.Devices,
	}})

	v.SetDefault("stats.sink", SinkNone)
	v.SetDefault("stats.flush_interval", (10 * time.Second).String())
	v.SetDefault("stats.sql.driver", "sqlite3")
	v.SetDefault("stats.sql.dsn", "cldispatch-stats.db")
	v.SetDefault("stats.sql.table", apistats.DefaultTable)
	v.SetDefault("stats.redis.addr", redis.Addr)
	v.SetDefault("stats.redis.password", "")
	v.SetDefault("stats.redis.db", 0)
	v.SetDefault("stats.redis.prefix", redis.Prefix)

	v.SetDefault("server.addr", server.Address)
	v.SetDefault("server.read_timeout", server.ReadTimeout.String())
	v.SetDefault("server.idle_timeout", server.IdleTimeout.String())
	v.SetDefault("server.read_header_timeout", server.ReadHeaderTimeout.String())
	v.SetDefault("server.shutdown_timeout", server.ShutdownTimeout.String())
	v.SetDefault("server.stream_interval", server.StreamInterval.String())
	v.SetDefault("server.auth_secret", server.AuthSecret)
	v.SetDefault("server.pprof", server.Profiling)
}

// New returns a viper instance with defaults and environment overrides
// configured. path selects an explicit file; otherwise cldispatch.yaml is
// looked up in dir.
func New(path, dir string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cldispatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads cldispatch.yaml from the working directory, or path when set.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	return LoadFrom(New(path, "."))
}

// LoadFrom decodes and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		floatToVersionString,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// floatToVersionString keeps unquoted YAML versions such as 3.0 from
// decoding as "3".
func floatToVersionString(from, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String {
		return data, nil
	}
	var f float64
	switch from.Kind() {
	case reflect.Float64:
		f = data.(float64)
	case reflect.Float32:
		f = float64(data.(float32))
	default:
		return data, nil
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s, nil
}

// KnownLayers lists the layer names accepted in loader.layers.
func KnownLayers() []string {
	return []string{calltrace.LayerName, apistats.LayerName}
}

// Validate checks the decoded configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Format) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be %q or %q, got %q", ErrInvalid, logging.FormatText, logging.FormatJSON, c.Log.Format)
	}

	seenLayer := make(map[string]bool)
	for _, name := range c.Loader.Layers {
		if name != calltrace.LayerName && name != apistats.LayerName {
			return fmt.Errorf("%w: unknown layer %q (known: %s)", ErrInvalid, name, strings.Join(KnownLayers(), ", "))
		}
		if seenLayer[name] {
			return fmt.Errorf("%w: layer %q listed twice", ErrInvalid, name)
		}
		seenLayer[name] = true
	}
	if c.Loader.MaxPlatforms <= 0 {
		return fmt.Errorf("%w: loader.max_platforms must be positive", ErrInvalid)
	}

	if len(c.Drivers) == 0 {
		return fmt.Errorf("%w: at least one driver is required", ErrInvalid)
	}
	seenDriver := make(map[string]bool)
	for _, d := range c.Drivers {
		if d.Name == "" {
			return fmt.Errorf("%w: driver name is required", ErrInvalid)
		}
		if seenDriver[d.Name] {
			return fmt.Errorf("%w: driver %q listed twice", ErrInvalid, d.Name)
		}
		seenDriver[d.Name] = true
	}

	switch c.Stats.Sink {
	case SinkNone, "":
	case SinkSQL:
		if _, err := apistats.DialectFor(c.Stats.SQL.Driver); err != nil {
			return fmt.Errorf("%w: stats.sql.driver: %v", ErrInvalid, err)
		}
		if c.Stats.SQL.DSN == "" {
			return fmt.Errorf("%w: stats.sql.dsn is required", ErrInvalid)
		}
	case SinkRedis:
		if c.Stats.Redis.Addr == "" {
			return fmt.Errorf("%w: stats.redis.addr is required", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: stats.sink must be %q, %q or %q, got %q", ErrInvalid, SinkNone, SinkSQL, SinkRedis, c.Stats.Sink)
	}
	if c.Stats.Sink != SinkNone && c.Stats.Sink != "" && !seenLayer[apistats.LayerName] {
		return fmt.Errorf("%w: stats.sink %q needs the %q layer", ErrInvalid, c.Stats.Sink, apistats.LayerName)
	}
	if c.Stats.FlushInterval <= 0 {
		return fmt.Errorf("%w: stats.flush_interval must be positive", ErrInvalid)
	}

	if c.Server.StreamInterval <= 0 {
		return fmt.Errorf("%w: server.stream_interval must be positive", ErrInvalid)
	}
	return nil
}

// HasLayer reports whether name is enabled.
func (c *Config) HasLayer(name string) bool {
	return slices.Contains(c.Loader.Layers, name)
}
