package config

import (
	"strings"
	"testing"
	"time"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "8080",
			Env:            "development",
			ReadTimeout:    15 * time.Second,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         "8000",
			Namespace:    "killpowa",
			Database:     "main",
			QueryTimeout: 2 * time.Second,
		},
		JWT: JWTConfig{
			Secret:         "secret",
			Issuer:         "killpowa",
			ExpirationMins: 14400,
		},
		Stream: StreamConfig{
			HeartbeatInterval: 30 * time.Second,
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	cfg := validBaseConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_InvalidServerEnv(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "invalid"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for invalid SERVER_ENV")
	}
	if !strings.Contains(err.Error(), "SERVER_ENV") {
		t.Errorf("expected error to mention SERVER_ENV, got: %v", err)
	}
}

func TestConfig_Validate_MissingPort(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Port = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing SERVER_PORT")
	}
	if !strings.Contains(err.Error(), "SERVER_PORT") {
		t.Errorf("expected error to mention SERVER_PORT, got: %v", err)
	}
}

func TestConfig_Validate_MissingJWTSecret(t *testing.T) {
	cfg := validBaseConfig()
	cfg.JWT.Secret = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing JWT_SECRET")
	}
	if !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Errorf("expected error to mention JWT_SECRET, got: %v", err)
	}
}

func TestConfig_Validate_DefaultSecretRejectedInProduction(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "production"
	cfg.JWT.Secret = "secret"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for default JWT_SECRET in production")
	}
}

func TestConfig_Validate_DefaultSecretAllowedInDevelopment(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "secret"

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got error: %v", err)
	}
}

func TestConfig_Validate_NegativeInviteMaxAttempts(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Invite.MaxAttempts = -1

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for negative INVITE_CODE_MAX_ATTEMPTS")
	}
}

func TestConfig_Validate_NonPositiveHeartbeat(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Stream.HeartbeatInterval = 0

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for zero STREAM_HEARTBEAT_INTERVAL")
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.JWT.Issuer != "killpowa" {
		t.Errorf("expected default issuer killpowa, got %s", cfg.JWT.Issuer)
	}
	if cfg.JWT.ExpirationMins != 14400 {
		t.Errorf("expected default expiration 14400 minutes, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.Invite.MaxAttempts != 0 {
		t.Errorf("expected unbounded invite attempts by default, got %d", cfg.Invite.MaxAttempts)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("JWT_EXPIRATION_MINS", "60")
	t.Setenv("STREAM_HEARTBEAT_INTERVAL", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.JWT.ExpirationMins != 60 {
		t.Errorf("expected expiration 60 minutes, got %d", cfg.JWT.ExpirationMins)
	}
	if cfg.Stream.HeartbeatInterval != 5*time.Second {
		t.Errorf("expected heartbeat 5s, got %v", cfg.Stream.HeartbeatInterval)
	}
	if len(cfg.Server.AllowedOrigins) != 2 {
		t.Errorf("expected 2 allowed origins, got %v", cfg.Server.AllowedOrigins)
	}
}
