package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	// Server
	Port         string
	Environment  string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Structured generation backend
	LLMProvider   string
	GeminiAPIKey  string
	GeminiModel   string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Image backend
	ImageAPIURL        string
	ImageModel         string
	PollinationsAPIKey string

	// Usage tracking, disabled when RedisURI is empty
	RedisURI string
	UsageTTL time.Duration

	// JWT verification, disabled when JWTSecret is empty
	JWTSecret string
}

// NewConfig creates a new configuration from environment variables
func NewConfig() *Config {
	return &Config{
		// Server
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ReadTimeout:  time.Duration(getEnvInt("READ_TIMEOUT", 5)) * time.Second,
		WriteTimeout: time.Duration(getEnvInt("WRITE_TIMEOUT", 120)) * time.Second,

		// Structured generation backend
		LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),

		// Image backend
		ImageAPIURL:        getEnv("IMAGE_API_URL", "https://image.pollinations.ai"),
		ImageModel:         getEnv("IMAGE_MODEL", "flux"),
		PollinationsAPIKey: getEnv("POLLINATIONS_API_KEY", ""),

		// Usage tracking
		RedisURI: getEnv("REDIS_URI", ""),
		UsageTTL: time.Duration(getEnvInt("USAGE_TTL_DAYS", 30)) * 24 * time.Hour,

		// JWT
		JWTSecret: getEnv("JWT_SECRET", ""),
	}
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt parses an integer variable, falling back to the default when unset or malformed
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
