package config

import (
	"strings"
	"testing"
)

func validBaseConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           "9000",
			Env:            "development",
			AllowedOrigins: []string{"http://localhost:5173"},
		},
		Database: DatabaseConfig{
			Driver:    "surreal",
			Host:      "localhost",
			Port:      "8000",
			Namespace: "roster",
			Database:  "main",
		},
		Auth: AuthConfig{
			Issuer:   "roster-api",
			Audience: "roster",
		},
	}
}

func TestConfig_Validate_ValidConfig(t *testing.T) {
	if err := validBaseConfig().Validate(); err != nil {
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
}

func TestConfig_Validate_UnknownDriver(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database.Driver = "oracle"

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for unknown DB_DRIVER")
	}
	if !strings.Contains(err.Error(), "DB_DRIVER") {
		t.Errorf("expected error to mention DB_DRIVER, got: %v", err)
	}
}

func TestConfig_Validate_MemoryDriverNeedsNothing(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database = DatabaseConfig{Driver: "memory"}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected memory driver to validate, got: %v", err)
	}
}

func TestConfig_Validate_PostgresNeedsDSN(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Database = DatabaseConfig{Driver: "postgres"}

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing DB_POSTGRES_DSN")
	}
}

func TestConfig_Validate_ProductionNeedsSecret(t *testing.T) {
	cfg := validBaseConfig()
	cfg.Server.Env = "production"
	cfg.Auth.Secret = ""

	err := cfg.Validate()
	if err == nil {
		t.Error("expected error for missing AUTH_JWT_SECRET in production")
	}

	cfg.Auth.Secret = "s3cret"
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid production config, got: %v", err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port == "" {
		t.Error("expected a default SERVER_PORT")
	}
	if cfg.Database.Driver != "surreal" {
		t.Errorf("expected default DB_DRIVER 'surreal', got %q", cfg.Database.Driver)
	}
}

func TestConfig_EnvPredicates(t *testing.T) {
	cfg := validBaseConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("expected development predicates")
	}

	cfg.Server.Env = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("expected production predicates")
	}
}
