package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	Database  DatabaseConfig
	Storage   StorageConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LLMConfig struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
	Timeout  time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type StorageConfig struct {
	MaxFileSize int64
}

type RateLimitConfig struct {
	Max    int
	Window time.Duration
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment and defaults")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", ProviderGroq))

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		LLM: LLMConfig{
			Provider: provider,
			Model:    getEnv("LLM_MODEL", defaultModel(provider)),
			APIKey:   apiKeyFor(provider),
			BaseURL:  baseURLFor(provider),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", "60s"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "smart_ats"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
		},
		RateLimit: RateLimitConfig{
			Max:    getEnvAsInt("RATE_LIMIT_MAX", 20),
			Window: getEnvAsDuration("RATE_LIMIT_WINDOW", "1m"),
		},
	}
}

// Validate reports configuration that would make every submission fail.
func (c *Config) Validate() error {
	switch c.LLM.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q (want %q or %q)", c.LLM.Provider, ProviderGroq, ProviderGemini)
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("missing API key for provider %q", c.LLM.Provider)
	}
	if c.Storage.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.Storage.MaxFileSize)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// LedgerEnabled is true when a database host has been configured.
func (c *Config) LedgerEnabled() bool {
	return c.Database.Host != ""
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.5-flash"
	}
	return "llama-3.3-70b-versatile"
}

func apiKeyFor(provider string) string {
	if provider == ProviderGemini {
		return getEnv("GEMINI_API_KEY", "")
	}
	return getEnv("GROQ_API_KEY", "")
}

// baseURLFor returns the endpoint override. Empty for Gemini means the SDK default.
func baseURLFor(provider string) string {
	if provider == ProviderGemini {
		return getEnv("GEMINI_BASE_URL", "")
	}
	return getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
