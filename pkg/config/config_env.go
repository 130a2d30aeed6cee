package config

import "os"

// ApplyEnvConfig applies ORDERBOARD_* variables to cfg. Explicitly set flags win.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("addr", os.Getenv("ORDERBOARD_ADDR"), &cfg.Addr)
	s.setString("tls-cert", os.Getenv("ORDERBOARD_TLS_CERT"), &cfg.TLSCert)
	s.setString("tls-key", os.Getenv("ORDERBOARD_TLS_KEY"), &cfg.TLSKey)
	s.setString("log-level", os.Getenv("ORDERBOARD_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("store", os.Getenv("ORDERBOARD_STORE"), &cfg.Store)
	s.setString("redis-addr", os.Getenv("ORDERBOARD_REDIS_ADDR"), &cfg.RedisAddr)
	s.setString("otel-host", os.Getenv("ORDERBOARD_OTEL_HOST"), &cfg.OTelHost)
	s.setBoolFromString("seed-demo", os.Getenv("ORDERBOARD_SEED_DEMO"), &cfg.SeedDemo)

	if err := s.setDuration("session-ttl", os.Getenv("ORDERBOARD_SESSION_TTL"), &cfg.SessionTTL); err != nil {
		return err
	}
	if err := s.setFloatFromString("otel-probability", os.Getenv("ORDERBOARD_OTEL_PROBABILITY"), &cfg.OTelProbability); err != nil {
		return err
	}
	return nil
}
