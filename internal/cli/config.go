package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/neuroviz/neuroplot/pkg/backend"
	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

// Environment variables that override the config file.
const (
	envBackend   = "NEUROPLOT_BACKEND"
	envOutputDir = "NEUROPLOT_OUTPUT_DIR"
	envRedisAddr = "NEUROPLOT_REDIS_ADDR"
	envMongoURI  = "NEUROPLOT_MONGO_URI"
)

// Config holds backend and server settings.
type Config struct {
	Backend   string       `toml:"backend"`
	OutputDir string       `toml:"output_dir"`
	Language  string       `toml:"language"`
	Redis     RedisConfig  `toml:"redis"`
	Mongo     MongoConfig  `toml:"mongo"`
	Server    ServerConfig `toml:"server"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
	TTL      string `toml:"ttl"` // Go duration, e.g. "24h"
}

func (r RedisConfig) ttl() (time.Duration, error) {
	if r.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.TTL)
	if err != nil {
		return 0, errs.Wrap(errs.ErrCodeInvalidInput, err, "redis ttl %q", r.TTL)
	}
	return d, nil
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// ServerConfig configures the figure server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

func defaultConfig() Config {
	return Config{
		Backend:   backend.KindFile,
		OutputDir: ".",
		Redis:     RedisConfig{Addr: "localhost:6379"},
		Server:    ServerConfig{Addr: defaultAddr},
	}
}

// configPath returns the config file location using XDG standard
// (~/.config/neuroplot/config.toml).
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

// loadConfig reads the config file at path on top of the defaults, then
// applies environment overrides. An empty path selects the default location;
// a missing default file is not an error.
func loadConfig(path string, getenv func(string) string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !os.IsNotExist(err) || explicit {
				return Config{}, errs.Wrap(errs.ErrCodeInvalidInput, err, "read config %s", path)
			}
		}
	}

	applyEnv(&cfg, getenv)
	return cfg, nil
}

func applyEnv(cfg *Config, getenv func(string) string) {
	overrides := []struct {
		key string
		dst *string
	}{
		{envBackend, &cfg.Backend},
		{envOutputDir, &cfg.OutputDir},
		{envRedisAddr, &cfg.Redis.Addr},
		{envMongoURI, &cfg.Mongo.URI},
	}
	for _, o := range overrides {
		if v := getenv(o.key); v != "" {
			*o.dst = v
		}
	}
}

func (cfg Config) validate() error {
	if !backend.ValidKinds[cfg.Backend] {
		return errs.New(errs.ErrCodeInvalidInput, "unknown backend %q (must be memory, file, redis or mongo)", cfg.Backend)
	}
	return nil
}

// backendFlags are the per-command overrides of the backend settings.
type backendFlags struct {
	backend   string
	outputDir string
	redisAddr string
	mongoURI  string
}

func (f *backendFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.backend, "backend", "b", "", "plotting backend: memory, file, redis, mongo")
	cmd.Flags().StringVarP(&f.outputDir, "output", "o", "", "output directory for the file backend")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "", "redis address (host:port)")
	cmd.Flags().StringVar(&f.mongoURI, "mongo-uri", "", "mongodb connection string")
	_ = cmd.RegisterFlagCompletionFunc("backend", completeBackends)
}

func (f *backendFlags) apply(cfg *Config) {
	for _, o := range []struct {
		v   string
		dst *string
	}{
		{f.backend, &cfg.Backend},
		{f.outputDir, &cfg.OutputDir},
		{f.redisAddr, &cfg.Redis.Addr},
		{f.mongoURI, &cfg.Mongo.URI},
	} {
		if o.v != "" {
			*o.dst = o.v
		}
	}
}

// resolveConfig loads the config and applies flag overrides.
func (c *CLI) resolveConfig(flags *backendFlags) (Config, error) {
	cfg, err := loadConfig(c.configPath, os.Getenv)
	if err != nil {
		return Config{}, err
	}
	if flags != nil {
		flags.apply(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
