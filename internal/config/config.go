package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Supported content store drivers
const (
	StoreDriverMemory   = "memory"
	StoreDriverFile     = "file"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)

// Supported image encodings
const (
	ImageModeDataURI = "datauri"
	ImageModeFile    = "file"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
		PublicURL   string `yaml:"public_url" env:"SERVER_PUBLIC_URL"`

		// AllowedOrigins lists cross-origin pages that may open live connections.
		AllowedOrigins []string `yaml:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	// Store selects where realm documents are persisted.
	Store struct {
		Driver     string `yaml:"driver" env:"STORE_DRIVER"`
		Path       string `yaml:"path" env:"STORE_PATH"`
		KeyPrefix  string `yaml:"key_prefix" env:"STORE_KEY_PREFIX"`
		QuotaBytes int    `yaml:"quota_bytes" env:"STORE_QUOTA_BYTES"`
	} `yaml:"store"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	// Editor holds the admin identity and the cosmetic delays of the edit/save control.
	Editor struct {
		Username     string `yaml:"username" env:"EDITOR_USERNAME"`
		PasswordHash string `yaml:"password_hash" env:"EDITOR_PASSWORD_HASH"`
		EditDelay    string `yaml:"edit_delay" env:"EDITOR_EDIT_DELAY"`
		SaveDelay    string `yaml:"save_delay" env:"EDITOR_SAVE_DELAY"`
		SessionTTL   string `yaml:"session_ttl" env:"EDITOR_SESSION_TTL"`
	} `yaml:"editor"`

	Images struct {
		Mode     string `yaml:"mode" env:"IMAGES_MODE"`
		MaxBytes int    `yaml:"max_bytes" env:"IMAGES_MAX_BYTES"`
	} `yaml:"images"`

	// Upstream is the remote REST API the catalog pages read from.
	Upstream struct {
		BaseURL string `yaml:"base_url" env:"UPSTREAM_BASE_URL"`
		Timeout string `yaml:"timeout" env:"UPSTREAM_TIMEOUT"`
	} `yaml:"upstream"`

	SMTP struct {
		Host        string `yaml:"host" env:"SMTP_HOST"`
		Port        int    `yaml:"port" env:"SMTP_PORT"`
		Username    string `yaml:"username" env:"SMTP_USERNAME"`
		Password    string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName    string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail   string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS      bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
		NotifyEmail string `yaml:"notify_email" env:"SMTP_NOTIFY_EMAIL"`
	} `yaml:"smtp"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// .env is optional; real environment variables still win over it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "forensicsite"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.Store.Driver = StoreDriverFile
	config.Store.Path = "data/content"
	config.Store.KeyPrefix = "forensic:"
	config.Store.QuotaBytes = 5 * 1024 * 1024

	config.JWT.AccessTokenExpiration = "8h"
	config.JWT.Issuer = "forensicsite"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Editor.Username = "admin"
	config.Editor.EditDelay = "600ms"
	config.Editor.SaveDelay = "800ms"
	config.Editor.SessionTTL = "2h"

	config.Images.Mode = ImageModeDataURI
	config.Images.MaxBytes = 2 * 1024 * 1024

	config.Upstream.Timeout = "5s"

	config.SMTP.Port = 587
	config.SMTP.FromName = "Forensic Institute"
	config.SMTP.UseTLS = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Store.Driver {
	case StoreDriverMemory, StoreDriverFile, StoreDriverSQLite, StoreDriverPostgres:
	default:
		return fmt.Errorf("unsupported store driver %q", config.Store.Driver)
	}

	if config.Store.Driver != StoreDriverMemory && config.Store.Driver != StoreDriverPostgres && config.Store.Path == "" {
		return fmt.Errorf("store path is required for the %s driver", config.Store.Driver)
	}

	if config.Store.QuotaBytes < 0 {
		return fmt.Errorf("store quota must not be negative")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Editor.PasswordHash == "" {
		return fmt.Errorf("editor password hash is required")
	}

	if !strings.HasPrefix(config.Editor.PasswordHash, "$2") {
		return fmt.Errorf("editor password hash must be a bcrypt hash")
	}

	switch config.Images.Mode {
	case ImageModeDataURI, ImageModeFile:
	default:
		return fmt.Errorf("unsupported image mode %q", config.Images.Mode)
	}

	durations := map[string]string{
		"JWT access token expiration": config.JWT.AccessTokenExpiration,
		"editor edit delay":           config.Editor.EditDelay,
		"editor save delay":           config.Editor.SaveDelay,
		"editor session ttl":          config.Editor.SessionTTL,
		"upstream timeout":            config.Upstream.Timeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// BaseURL returns the public URL of the site without a trailing slash
func (c *Config) BaseURL() string {
	if c.Server.PublicURL != "" {
		return strings.TrimRight(c.Server.PublicURL, "/")
	}
	return "http://localhost:" + c.Server.Port
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
