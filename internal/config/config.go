// Package config provides configuration management using Viper.
// It loads configuration from environment variables, .env files, and config files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultServerPort       = 8080
	defaultServerHost       = "0.0.0.0"
	defaultReadTimeout      = 30 * time.Second
	defaultWriteTimeout     = 30 * time.Second
	defaultStoreBackend     = "sqlite"
	defaultSQLitePath       = "./data/vidgrid.db"
	defaultMigrationsPath   = "file://./migrations"
	defaultMongoURI         = ""
	defaultMongoDatabase    = "vidgrid"
	defaultMongoCollection  = "videos"
	defaultMongoTimeout     = 10 * time.Second
	defaultAdminUsername    = "admin"
	defaultAdminPassword    = "changeme"
	defaultPrefsPath        = "./data/prefs.json"
	defaultSessionTTL       = 30 * time.Minute
	defaultSessionCookie    = "vidgrid_session"
	defaultLogLevel         = "info"
	defaultLogPretty        = false
	envPrefix               = "VIDGRID"
)

// Store backend names accepted by Config.Store.Backend.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendMongo  = "mongo"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Store   StoreConfig
	Admin   AdminConfig
	Prefs   PrefsConfig
	Session SessionConfig
	Logging LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port         int
	Host         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// StoreConfig selects and configures the catalog store backend
type StoreConfig struct {
	Backend         string // memory, sqlite, or mongo
	SQLitePath      string
	MigrationsPath  string
	MongoURI        string
	MongoDatabase   string
	MongoCollection string
	MongoTimeout    time.Duration
}

// AdminConfig holds the hardcoded admin credentials.
//
// This is a presentation gate only, not a security control: it decides
// which views render, and must never be relied on to protect data.
type AdminConfig struct {
	Username string
	Password string
}

// PrefsConfig holds local preference persistence configuration
type PrefsConfig struct {
	Path string
}

// SessionConfig holds browser-session configuration
type SessionConfig struct {
	TTL    time.Duration
	Cookie string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration from .env file, config files, environment variables, and defaults
func Load() (*Config, error) {
	// .env files are optional in production and CI where env vars are set directly
	_ = godotenv.Load() // nolint:errcheck // .env file is optional

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/vidgrid")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values for all configuration options
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", defaultServerPort)
	v.SetDefault("server.host", defaultServerHost)
	v.SetDefault("server.readtimeout", defaultReadTimeout)
	v.SetDefault("server.writetimeout", defaultWriteTimeout)

	v.SetDefault("store.backend", defaultStoreBackend)
	v.SetDefault("store.sqlitepath", defaultSQLitePath)
	v.SetDefault("store.migrationspath", defaultMigrationsPath)
	v.SetDefault("store.mongouri", defaultMongoURI)
	v.SetDefault("store.mongodatabase", defaultMongoDatabase)
	v.SetDefault("store.mongocollection", defaultMongoCollection)
	v.SetDefault("store.mongotimeout", defaultMongoTimeout)

	v.SetDefault("admin.username", defaultAdminUsername)
	v.SetDefault("admin.password", defaultAdminPassword)

	v.SetDefault("prefs.path", defaultPrefsPath)

	v.SetDefault("session.ttl", defaultSessionTTL)
	v.SetDefault("session.cookie", defaultSessionCookie)

	v.SetDefault("logging.level", defaultLogLevel)
	v.SetDefault("logging.pretty", defaultLogPretty)
}

// Validate checks that configuration values are valid
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 {
		return fmt.Errorf("invalid read timeout: %v (must be > 0)", c.Server.ReadTimeout)
	}
	if c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("invalid write timeout: %v (must be > 0)", c.Server.WriteTimeout)
	}

	switch c.Store.Backend {
	case BackendMemory, BackendSQLite, BackendMongo:
	default:
		return fmt.Errorf("invalid store backend: %s (must be one of: %s)",
			c.Store.Backend, strings.Join([]string{BackendMemory, BackendSQLite, BackendMongo}, ", "))
	}
	if c.Store.Backend == BackendSQLite && c.Store.SQLitePath == "" {
		return errors.New("store.sqlitepath is required for the sqlite backend")
	}
	// An empty mongo URI is allowed: the catalog client treats the store as
	// unconfigured, reads degrade to an empty catalog, writes fail visibly.

	if c.Admin.Username == "" || c.Admin.Password == "" {
		return errors.New("admin username and password must not be empty")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("invalid session ttl: %v (must be > 0)", c.Session.TTL)
	}
	if c.Session.Cookie == "" {
		return errors.New("session cookie name must not be empty")
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)",
			c.Logging.Level, strings.Join(validLevels, ", "))
	}

	return nil
}

// contains checks if a string slice contains a specific value
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
