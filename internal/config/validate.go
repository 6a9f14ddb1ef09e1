package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch c.Store.Backend {
	case BackendMongo:
		if err := c.Mongo.validate(); err != nil {
			return fmt.Errorf("mongo: %w", err)
		}
	case BackendPostgres:
		if err := c.Database.validate(); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("store.backend must be one of %s, %s, %s (got %q)",
			BackendMongo, BackendPostgres, BackendMemory, c.Store.Backend)
	}

	if !slices.Contains(logLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}

func (m *MongoConfig) validate() error {
	if m.URI == "" {
		return fmt.Errorf("uri is required (DATABASE_CONNECTION)")
	}
	if m.Database == "" {
		return fmt.Errorf("database is required")
	}
	if m.Collection == "" {
		return fmt.Errorf("collection is required")
	}
	if m.ConnectTimeout <= 0 {
		return fmt.Errorf("connect_timeout must be > 0 (got %v)", m.ConnectTimeout)
	}
	return nil
}

func (d *DatabaseConfig) validate() error {
	if d.DSN == "" {
		return fmt.Errorf("dsn is required (DATABASE_DSN)")
	}
	if d.MaxConns <= 0 {
		return fmt.Errorf("max_conns must be > 0 (got %d)", d.MaxConns)
	}
	if d.MinConns < 0 || d.MinConns > d.MaxConns {
		return fmt.Errorf("min_conns must be in 0..max_conns (got %d)", d.MinConns)
	}
	return nil
}
