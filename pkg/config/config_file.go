package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config with TOML-friendly types.
type FileConfig struct {
	Addr            string   `toml:"addr"`
	TLSCert         string   `toml:"tls_cert"`
	TLSKey          string   `toml:"tls_key"`
	LogLevel        string   `toml:"log_level"`
	Store           string   `toml:"store"`
	RedisAddr       string   `toml:"redis_addr"`
	SessionTTL      string   `toml:"session_ttl"`
	SeedDemo        *bool    `toml:"seed_demo"`
	OTelHost        string   `toml:"otel_host"`
	OTelProbability *float64 `toml:"otel_probability"`
}

// LoadFileConfig reads and parses a TOML config file.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.orderboard/config.toml, or "" without a home directory.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".orderboard", "config.toml")
	}
	return ""
}

// ApplyFileConfig copies file values into cfg, skipping explicitly set flags.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("addr", fc.Addr, &cfg.Addr)
	s.setString("tls-cert", fc.TLSCert, &cfg.TLSCert)
	s.setString("tls-key", fc.TLSKey, &cfg.TLSKey)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("store", fc.Store, &cfg.Store)
	s.setString("redis-addr", fc.RedisAddr, &cfg.RedisAddr)
	s.setString("otel-host", fc.OTelHost, &cfg.OTelHost)

	if err := s.setDuration("session-ttl", fc.SessionTTL, &cfg.SessionTTL); err != nil {
		return err
	}
	s.setBool("seed-demo", fc.SeedDemo, &cfg.SeedDemo)
	s.setFloat("otel-probability", fc.OTelProbability, &cfg.OTelProbability)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
