package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database drivers understood by the database package.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	defaultSecretsDir      = "/run/secrets"
	defaultUpstreamTimeout = 5 * time.Second
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// Auth configuration
	JWTSecret      string
	GatewayKeyHash string

	// Upstream lookups
	OpenWeatherAPIKey string
	OpenWeatherURL    string
	OpenFoodFactsURL  string
	UpstreamTimeout   time.Duration

	// Timezone names the IANA zone used for calendar days.
	Timezone string

	Storage StorageConfig
}

// StorageConfig describes the weekly report archive bucket.
type StorageConfig struct {
	BucketName string
	Region     string
}

// ReportsEnabled reports whether weekly report export is configured.
func (s StorageConfig) ReportsEnabled() bool {
	return s.BucketName != "" && s.Region != ""
}

// setting maps one config value to its environment variable and Docker secret.
type setting struct {
	env    string
	secret string
	dst    *string
	def    string
}

func (cfg *Config) settings() []setting {
	return []setting{
		{"SERVER_PORT", "server_port", &cfg.ServerPort, "8080"},
		{"SERVER_HOST", "server_host", &cfg.ServerHost, "0.0.0.0"},
		{"DB_DRIVER", "", &cfg.DBDriver, DriverPostgres},
		{"DB_HOST", "db_host", &cfg.DBHost, ""},
		{"DB_PORT", "db_port", &cfg.DBPort, "5432"},
		{"DB_USER", "db_user", &cfg.DBUser, ""},
		{"DB_PASSWORD", "db_password", &cfg.DBPassword, ""},
		{"DB_NAME", "db_name", &cfg.DBName, "fittrack"},
		{"DB_SSL_MODE", "db_ssl_mode", &cfg.DBSSLMode, "disable"},
		{"SQLITE_PATH", "", &cfg.SQLitePath, "fittrack.db"},
		{"REDIS_HOST", "redis_host", &cfg.RedisHost, ""},
		{"REDIS_PORT", "redis_port", &cfg.RedisPort, "6379"},
		{"REDIS_PASSWORD", "redis_password", &cfg.RedisPassword, ""},
		{"REDIS_URL", "redis_url", &cfg.RedisURL, ""},
		{"JWT_SECRET", "jwt_secret", &cfg.JWTSecret, ""},
		{"GATEWAY_KEY_HASH", "gateway_key_hash", &cfg.GatewayKeyHash, ""},
		{"OPENWEATHER_API_KEY", "openweather_api_key", &cfg.OpenWeatherAPIKey, ""},
		{"OPENWEATHER_URL", "", &cfg.OpenWeatherURL, ""},
		{"OPENFOODFACTS_URL", "", &cfg.OpenFoodFactsURL, ""},
		{"TIMEZONE", "", &cfg.Timezone, "UTC"},
		{"S3_BUCKET_NAME", "", &cfg.Storage.BucketName, ""},
		{"AWS_REGION", "", &cfg.Storage.Region, ""},
	}
}

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := GetEnvironment()
	cfg := &Config{}

	// Load configuration based on environment
	switch env {
	case CI:
		cfg.load(fromEnv)
	case Development, Test:
		// A missing .env file is fine; the environment may already be set.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
		cfg.load(envThenSecret)
	case Production:
		cfg.load(secretThenEnv)
	default:
		return nil, fmt.Errorf("unknown environment: %s", env)
	}

	if err := cfg.parseDerived(); err != nil {
		return nil, err
	}

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Printf("[Config] Loaded %s configuration (db driver %s, timezone %s)", env, cfg.DBDriver, cfg.Timezone)
	return cfg, nil
}

type lookup func(s setting) string

func (cfg *Config) load(get lookup) {
	for _, s := range cfg.settings() {
		v := get(s)
		if v == "" {
			v = s.def
		}
		*s.dst = v
	}
	cfg.RedisDB = 0 // This is a constant, not a secret
}

func (cfg *Config) parseDerived() error {
	cfg.UpstreamTimeout = defaultUpstreamTimeout
	if raw := os.Getenv("UPSTREAM_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return ValidationError{Field: "UPSTREAM_TIMEOUT", Message: fmt.Sprintf("invalid duration %q", raw)}
		}
		cfg.UpstreamTimeout = d
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
			}
		}
	}
	return nil
}

// Location resolves Timezone.
func (cfg *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	return loc, nil
}

// RedisAddr returns host:port for the Redis client.
func (cfg *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)
}

// PostgresDSN builds the lib/pq style connection string.
func (cfg *Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
}

func fromEnv(s setting) string {
	return os.Getenv(s.env)
}

func envThenSecret(s setting) string {
	if v := os.Getenv(s.env); v != "" {
		return v
	}
	return readSecret(s.secret)
}

// secretThenEnv prefers Docker secrets; plain settings without a secret file
// still come from the environment.
func secretThenEnv(s setting) string {
	if v := readSecret(s.secret); v != "" {
		return v
	}
	return os.Getenv(s.env)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	if name == "" {
		return ""
	}
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = defaultSecretsDir
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
