package cli

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/graphcolor/pkg/errors"
)

// Cache backends selectable in the config file.
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config mirrors config.toml. Command-line flags override its values.
//
//	[coloring]
//	workers = 8
//	partitions = 32
//	max_rounds = 0
//
//	[generate]
//	generator = "uag"
//	seed = 42
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//
//	[cache.redis]
//	addr = "localhost:6379"
type Config struct {
	Coloring ColoringConfig `toml:"coloring"`
	Generate GenerateConfig `toml:"generate"`
	Cache    CacheConfig    `toml:"cache"`
}

// ColoringConfig holds defaults for the color command.
type ColoringConfig struct {
	Workers    int `toml:"workers"`
	Partitions int `toml:"partitions"`
	MaxRounds  int `toml:"max_rounds"`
}

// GenerateConfig holds defaults for random graph generation.
type GenerateConfig struct {
	Generator string `toml:"generator"`
	Seed      uint64 `toml:"seed"`
}

// CacheConfig selects and configures the result cache.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// duration decodes TOML strings such as "36h".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{Generator: "uag"},
		Cache: CacheConfig{
			Backend: backendFile,
			Redis:   RedisConfig{Addr: "localhost:6379", Prefix: appName + ":"},
		},
	}
}

// LoadConfig reads the config file at path on top of DefaultConfig.
// A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, cfg)
	if stderrors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown key %q", path, undecoded[0].String())
	}
	switch cfg.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "config %s: unknown cache backend %q", path, cfg.Cache.Backend)
	}
	return cfg, nil
}

// configPath returns the default config file using XDG standard
// (~/.config/graphcolor/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
