package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	DatabaseURL    string   `mapstructure:"DATABASE_URL"`
	DBMaxConns     int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns     int32    `mapstructure:"DB_MIN_CONNS"`
	CORSOrigins    []string `mapstructure:"CORS_ORIGINS"`
	GenAIAPIKey    string   `mapstructure:"GENAI_API_KEY"`
	GenAIModel     string   `mapstructure:"GENAI_MODEL"`
	GenAIBaseURL   string   `mapstructure:"GENAI_BASE_URL"`
	GenAITimeout   int      `mapstructure:"GENAI_TIMEOUT_SECONDS"`
	MaxMediaBytes  string   `mapstructure:"MAX_MEDIA_BYTES"`
	RateLimitRPS   float64  `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst int      `mapstructure:"RATE_LIMIT_BURST"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("GENAI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GENAI_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("GENAI_TIMEOUT_SECONDS", 60)
	v.SetDefault("MAX_MEDIA_BYTES", "32M")
	v.SetDefault("RATE_LIMIT_RPS", 50)
	v.SetDefault("RATE_LIMIT_BURST", 100)

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("CORS_ORIGINS")
	v.BindEnv("GENAI_API_KEY")
	v.BindEnv("GENAI_MODEL")
	v.BindEnv("GENAI_BASE_URL")
	v.BindEnv("GENAI_TIMEOUT_SECONDS")
	v.BindEnv("MAX_MEDIA_BYTES")
	v.BindEnv("RATE_LIMIT_RPS")
	v.BindEnv("RATE_LIMIT_BURST")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// GenAIRequestTimeout returns the per-call deadline for the external
// reasoning service.
func (c *Config) GenAIRequestTimeout() time.Duration {
	if c.GenAITimeout <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.GenAITimeout) * time.Second
}

// Validate checks that the configuration is safe to run. Media verification
// cannot work without an API key for the reasoning service, so production
// refuses to start without one. In development the key may be absent; every
// analysis then degrades to the fail-closed default.
func (c *Config) Validate() error {
	if c.GenAIAPIKey == "" && c.IsProduction() {
		return fmt.Errorf("GENAI_API_KEY is required in production")
	}
	if c.GenAIModel == "" {
		return fmt.Errorf("GENAI_MODEL must not be empty")
	}
	if c.GenAIBaseURL == "" {
		return fmt.Errorf("GENAI_BASE_URL must not be empty")
	}
	return nil
}
