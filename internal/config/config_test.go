package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

// chdirTemp moves the test into an empty directory so neither config.yaml
// nor .env from the package directory is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	return dir
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

store:
  backend: "mongo"

mongo:
  uri: "mongodb://localhost:27017"
  database: "words"
  collection: "dictionary"
  connect_timeout: "3s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2

http:
  strict_status: true

log:
  level: "debug"
  format: "text"
`

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 3333},
		Store:  StoreConfig{Backend: BackendMongo},
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "dictionary",
			Collection:     "dictionary",
			ConnectTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{DSN: "postgres://u:p@localhost:5432/testdb", MaxConns: 25, MinConns: 5},
		Log:      LogConfig{Level: "info", Format: "json"},
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, chdirTemp(t), validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if got := cfg.Server.Addr(); got != "127.0.0.1:9090" {
		t.Errorf("server.Addr() = %q", got)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("mongo.uri = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "words" {
		t.Errorf("mongo.database = %q, want words", cfg.Mongo.Database)
	}
	if cfg.Mongo.ConnectTimeout != 3*time.Second {
		t.Errorf("mongo.connect_timeout = %v, want 3s", cfg.Mongo.ConnectTimeout)
	}
	if cfg.Mongo.AppName != "dictionary-api" {
		t.Errorf("mongo.app_name = %q, want default", cfg.Mongo.AppName)
	}

	if cfg.Database.MaxConns != 10 {
		t.Errorf("database.max_conns = %d, want 10", cfg.Database.MaxConns)
	}
	if !cfg.HTTP.StrictStatus {
		t.Error("http.strict_status should be true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, chdirTemp(t), validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("DATABASE_CONNECTION", "mongodb://db.internal:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if cfg.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("mongo.uri = %q, want ENV override", cfg.Mongo.URI)
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_CONNECTION", "mongodb://localhost:27017")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3333 {
		t.Errorf("server.port = %d, want 3333 (default)", cfg.Server.Port)
	}
	if cfg.Store.Backend != BackendMongo {
		t.Errorf("store.backend = %q, want mongo (default)", cfg.Store.Backend)
	}
	if cfg.Mongo.Collection != "dictionary" {
		t.Errorf("mongo.collection = %q, want dictionary (default)", cfg.Mongo.Collection)
	}
	if cfg.HTTP.StrictStatus {
		t.Error("http.strict_status should default to false")
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	// Registered so t.Setenv restores it; godotenv only fills unset variables.
	t.Setenv("DATABASE_CONNECTION", "")
	if err := os.Unsetenv("DATABASE_CONNECTION"); err != nil {
		t.Fatal(err)
	}
	env := "DATABASE_CONNECTION=mongodb://from-dotenv:27017\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://from-dotenv:27017" {
		t.Errorf("mongo.uri = %q, want value from .env", cfg.Mongo.URI)
	}
}

func TestLoad_MissingMongoURI(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_CONNECTION", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when mongo backend has no URI")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeYAML(t, chdirTemp(t), `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid mongo", func(c *Config) {}, false},
		{"valid memory without URIs", func(c *Config) {
			c.Store.Backend = BackendMemory
			c.Mongo.URI = ""
			c.Database.DSN = ""
		}, false},
		{"valid postgres", func(c *Config) {
			c.Store.Backend = BackendPostgres
			c.Mongo.URI = ""
		}, false},
		{"unknown backend", func(c *Config) { c.Store.Backend = "redis" }, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"mongo without uri", func(c *Config) { c.Mongo.URI = "" }, true},
		{"mongo without collection", func(c *Config) { c.Mongo.Collection = "" }, true},
		{"mongo zero connect timeout", func(c *Config) { c.Mongo.ConnectTimeout = 0 }, true},
		{"postgres without dsn", func(c *Config) {
			c.Store.Backend = BackendPostgres
			c.Database.DSN = ""
		}, true},
		{"postgres min above max", func(c *Config) {
			c.Store.Backend = BackendPostgres
			c.Database.MinConns = 30
		}, true},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"log level case-insensitive", func(c *Config) { c.Log.Level = "DEBUG" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
