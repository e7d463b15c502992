package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	errs "github.com/neuroviz/neuroplot/pkg/errors"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("", envMap(nil))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Backend != "file" || cfg.OutputDir != "." || cfg.Server.Addr != defaultAddr {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestLoadConfigLayers(t *testing.T) {
	path := writeConfig(t, `
backend = "redis"
output_dir = "/srv/figures"
language = "zh"

[redis]
addr = "cache:6379"
db = 2
ttl = "24h"

[mongo]
database = "clinic"
`)

	cfg, err := loadConfig(path, envMap(map[string]string{
		envRedisAddr: "redis.internal:6380",
		envMongoURI:  "mongodb://db:27017",
	}))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}

	if cfg.Backend != "redis" || cfg.OutputDir != "/srv/figures" || cfg.Language != "zh" {
		t.Errorf("file values = %+v", cfg)
	}
	if cfg.Redis.Addr != "redis.internal:6380" {
		t.Errorf("redis addr = %q, env should win", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 2 || cfg.Mongo.Database != "clinic" || cfg.Mongo.URI != "mongodb://db:27017" {
		t.Errorf("nested values = %+v / %+v", cfg.Redis, cfg.Mongo)
	}
	if ttl, err := cfg.Redis.ttl(); err != nil || ttl != 24*time.Hour {
		t.Errorf("ttl = %v, %v", ttl, err)
	}

	flags := backendFlags{backend: "mongo", outputDir: "out"}
	flags.apply(&cfg)
	if cfg.Backend != "mongo" || cfg.OutputDir != "out" || cfg.Redis.Addr != "redis.internal:6380" {
		t.Errorf("flag overrides = %+v", cfg)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"), envMap(nil)); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("explicit missing config err = %v, want INVALID_INPUT", err)
	}
	if _, err := loadConfig(writeConfig(t, "backend = "), envMap(nil)); err == nil {
		t.Error("malformed config should fail")
	}

	cfg := defaultConfig()
	cfg.Backend = "s3"
	if err := cfg.validate(); !errs.Is(err, errs.ErrCodeInvalidInput) {
		t.Errorf("validate err = %v, want INVALID_INPUT", err)
	}
	if _, err := (RedisConfig{TTL: "soon"}).ttl(); err == nil {
		t.Error("bad ttl should fail")
	}
}
