package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sickle_db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8000" {
		t.Errorf("expected default port 8000, got %s", cfg.Port)
	}
	if !cfg.IsDev() {
		t.Error("expected development mode by default")
	}
	if cfg.GenAIModel != "gemini-2.5-flash" {
		t.Errorf("unexpected default model: %s", cfg.GenAIModel)
	}
	if cfg.MaxMediaBytes != "32M" {
		t.Errorf("unexpected default media limit: %s", cfg.MaxMediaBytes)
	}
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := Load(); err == nil {
		t.Error("expected error when DATABASE_URL is missing")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/sickle_db")
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("GENAI_TIMEOUT_SECONDS", "15")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
	if cfg.GenAIRequestTimeout() != 15*time.Second {
		t.Errorf("expected 15s timeout, got %s", cfg.GenAIRequestTimeout())
	}
}

func TestValidate_ProductionRequiresAPIKey(t *testing.T) {
	cfg := &Config{Env: "production", GenAIModel: "gemini-2.5-flash", GenAIBaseURL: "https://example.com"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing GENAI_API_KEY in production")
	}

	cfg.GenAIAPIKey = "key"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_DevAllowsMissingAPIKey(t *testing.T) {
	cfg := &Config{Env: "development", GenAIModel: "gemini-2.5-flash", GenAIBaseURL: "https://example.com"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyModel(t *testing.T) {
	cfg := &Config{Env: "development", GenAIBaseURL: "https://example.com"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty GENAI_MODEL")
	}
}

func TestGenAIRequestTimeout_Fallback(t *testing.T) {
	cfg := &Config{}
	if cfg.GenAIRequestTimeout() != 60*time.Second {
		t.Errorf("expected 60s fallback, got %s", cfg.GenAIRequestTimeout())
	}
}
