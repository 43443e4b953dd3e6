package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// Supabase record store
	SupabaseURL           string
	SupabaseKey           string
	SupabaseStorageBucket string

	// Direct PostgreSQL connection, used only for migrations
	DatabaseURL string

	// Aptos fullnode (testnet)
	AptosNodeURL string

	// Wallet sessions
	SessionSecret string
	SessionTTL    time.Duration

	// Record store queries are capped at this many rows per call
	MaxListRows int

	// Server
	Port             string
	Environment      string
	BaseURL          string
	CORSAllowOrigins []string
}

func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SUPABASE_STORAGE_BUCKET", "project-logos")
	v.SetDefault("APTOS_NODE_URL", "https://fullnode.testnet.aptoslabs.com")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("MAX_LIST_ROWS", 1000)
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")

	cfg := &Config{
		SupabaseURL:           v.GetString("SUPABASE_URL"),
		SupabaseKey:           v.GetString("SUPABASE_KEY"),
		SupabaseStorageBucket: v.GetString("SUPABASE_STORAGE_BUCKET"),

		DatabaseURL: v.GetString("DATABASE_URL"),

		AptosNodeURL: v.GetString("APTOS_NODE_URL"),

		SessionSecret: v.GetString("SESSION_SECRET"),
		SessionTTL:    v.GetDuration("SESSION_TTL"),

		MaxListRows: v.GetInt("MAX_LIST_ROWS"),

		Port:             v.GetString("PORT"),
		Environment:      v.GetString("ENVIRONMENT"),
		BaseURL:          v.GetString("BASE_URL"),
		CORSAllowOrigins: splitList(v.GetString("CORS_ALLOW_ORIGINS")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.SupabaseURL == "" {
		return fmt.Errorf("SUPABASE_URL is required")
	}
	if c.SupabaseKey == "" {
		return fmt.Errorf("SUPABASE_KEY is required")
	}
	if c.SessionSecret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.MaxListRows <= 0 {
		return fmt.Errorf("MAX_LIST_ROWS must be positive")
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
