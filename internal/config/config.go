package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Invite   InviteConfig
	Stream   StreamConfig
}

// ServerConfig holds HTTP server settings. There is no write timeout: the
// event stream endpoint holds its connection open indefinitely.
type ServerConfig struct {
	Port           string
	Env            string
	ReadTimeout    time.Duration
	AllowedOrigins []string
}

// DatabaseConfig holds SurrealDB connection settings
type DatabaseConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
	// QueryTimeout bounds every store call so a starved connection
	// fails fast instead of hanging the request.
	QueryTimeout time.Duration
}

// JWTConfig holds token signing settings
type JWTConfig struct {
	Secret         string
	Issuer         string
	ExpirationMins int
}

// InviteConfig holds invite code generation settings
type InviteConfig struct {
	// MaxAttempts bounds the retry-until-unique loop; 0 means unbounded.
	MaxAttempts int
}

// StreamConfig holds live event stream settings
type StreamConfig struct {
	HeartbeatInterval time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port:           getEnv("SERVER_PORT", "8080"),
			Env:            getEnv("SERVER_ENV", "development"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			AllowedOrigins: getSliceEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "8000"),
			Namespace:    getEnv("DB_NAMESPACE", "killpowa"),
			Database:     getEnv("DB_DATABASE", "main"),
			User:         getEnv("DB_USER", "root"),
			Password:     getEnv("DB_PASSWORD", "root"),
			QueryTimeout: getDurationEnv("DB_QUERY_TIMEOUT", 2*time.Second),
		},
		JWT: JWTConfig{
			Secret:         getEnv("JWT_SECRET", "secret"),
			Issuer:         getEnv("JWT_ISSUER", "killpowa"),
			ExpirationMins: getIntEnv("JWT_EXPIRATION_MINS", 14400),
		},
		Invite: InviteConfig{
			MaxAttempts: getIntEnv("INVITE_CODE_MAX_ATTEMPTS", 0),
		},
		Stream: StreamConfig{
			HeartbeatInterval: getDurationEnv("STREAM_HEARTBEAT_INTERVAL", 30*time.Second),
		},
	}, nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// Validate checks that all required configuration values are present and valid.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port == "" {
		errs = append(errs, errors.New("SERVER_PORT is required"))
	}
	if c.Server.Env != "development" && c.Server.Env != "production" && c.Server.Env != "test" {
		errs = append(errs, fmt.Errorf("SERVER_ENV must be 'development', 'production', or 'test', got '%s'", c.Server.Env))
	}
	if len(c.Server.AllowedOrigins) == 0 {
		errs = append(errs, errors.New("CORS_ALLOWED_ORIGINS must have at least one origin"))
	}

	if c.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if c.Database.Port == "" {
		errs = append(errs, errors.New("DB_PORT is required"))
	}
	if c.Database.Namespace == "" {
		errs = append(errs, errors.New("DB_NAMESPACE is required"))
	}
	if c.Database.Database == "" {
		errs = append(errs, errors.New("DB_DATABASE is required"))
	}
	if c.Database.QueryTimeout <= 0 {
		errs = append(errs, errors.New("DB_QUERY_TIMEOUT must be positive"))
	}

	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.IsProduction() && c.JWT.Secret == "secret" {
		errs = append(errs, errors.New("JWT_SECRET must not use the development default in production"))
	}
	if c.JWT.Issuer == "" {
		errs = append(errs, errors.New("JWT_ISSUER is required"))
	}
	if c.JWT.ExpirationMins <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRATION_MINS must be positive"))
	}

	if c.Invite.MaxAttempts < 0 {
		errs = append(errs, errors.New("INVITE_CODE_MAX_ATTEMPTS must not be negative"))
	}
	if c.Stream.HeartbeatInterval <= 0 {
		errs = append(errs, errors.New("STREAM_HEARTBEAT_INTERVAL must be positive"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}
