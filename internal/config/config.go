package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSystemInstruction is prefixed to every remote prompt unless the
// caller supplies its own system text.
const DefaultSystemInstruction = "You are a friendly assistant for Kalu's " +
	"portfolio website. Answer questions about Kalu's background, skills and " +
	"projects concisely and in a professional tone."

// Config is built once at startup and passed down; core logic never
// reads the environment directly.
type Config struct {
	Port               string
	GeminiAPIKey       string
	GeminiModel        string
	SystemInstruction  string
	MaxRetries         int
	RedisAddr          string
	RateLimitPerMinute int
	AllowedOrigins     string
}

// HasCredential reports whether a remote call can be attempted at all.
func (c Config) HasCredential() bool { return c.GeminiAPIKey != "" }

// Load reads .env (best effort) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return Config{
		Port:               getEnv("PORT", "3000"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiModel:        getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SystemInstruction:  getEnv("SYSTEM_INSTRUCTION", DefaultSystemInstruction),
		MaxRetries:         getEnvInt("GEMINI_MAX_RETRIES", 3),
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 60),
		AllowedOrigins:     getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
