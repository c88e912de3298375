package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"cruxen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	LLM    LLMConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	AllowedOrigins  []string
	RateLimitRPM    int
	MinPromptLength int
	MaxPromptLength int
}

// LLMConfig holds Groq/LLM related settings. APIKey may be empty: the
// /chat endpoint then reports itself unavailable instead of failing
// startup.
type LLMConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		LLM:    loadLLMConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		AllowedOrigins:  splitCSV(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000")),
		RateLimitRPM:    getEnvIntOrDefault("RATE_LIMIT_RPM", 60),
		MinPromptLength: getEnvIntOrDefault("MIN_PROMPT_LENGTH", 3),
		MaxPromptLength: getEnvIntOrDefault("MAX_PROMPT_LENGTH", 5000),
	}
}

func loadLLMConfig() LLMConfig {
	return LLMConfig{
		APIKey:      os.Getenv("GROQ_API_KEY"),
		BaseURL:     getEnvOrDefault("GROQ_API_URL", "https://api.groq.com/openai/v1"),
		Model:       getEnvOrDefault("GROQ_MODEL", "llama-3.3-70b-versatile"),
		Timeout:     getEnvDurationOrDefault("GROQ_TIMEOUT", 30*time.Second),
		MaxTokens:   getEnvIntOrDefault("GROQ_MAX_TOKENS", 2000),
		Temperature: getEnvFloatOrDefault("GROQ_TEMPERATURE", 0.3),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.MinPromptLength < 1 {
		return errors.ConfigInvalid("MIN_PROMPT_LENGTH must be at least 1")
	}
	if config.Server.MaxPromptLength <= config.Server.MinPromptLength {
		return errors.ConfigInvalid("MAX_PROMPT_LENGTH must exceed MIN_PROMPT_LENGTH")
	}
	if config.Server.RateLimitRPM < 1 {
		return errors.ConfigInvalid("RATE_LIMIT_RPM must be at least 1")
	}
	return nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		// Bare integers are treated as seconds, matching common API
		// timeout env conventions.
		if secs, err := strconv.Atoi(value); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultValue
}
