package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Environment struct {
	// Server configs
	IsDocker bool
	Port     string

	// Auth configs
	JWTSecret                 string
	JWTExpirationMilliseconds int
	AuthClientID              string
	AuthClientSecretHash      string

	// Decoder configs
	DecoderProvider string
	DecoderModel    string
	OpenAIAPIKey    string
	GeminiAPIKey    string

	// Redis configs (query cache; optional)
	RedisEnabled         bool
	RedisHost            string
	RedisPort            string
	RedisUsername        string
	RedisPassword        string
	QueryCacheTTLSeconds int
}

var Env Environment

// LoadEnv loads environment variables from .env file if present
// and validates required variables
func LoadEnv() error {
	// Check if running in Docker
	Env.IsDocker = os.Getenv("IS_DOCKER") == "true"

	// Load .env file only if not running in Docker
	if !Env.IsDocker {
		if err := godotenv.Load(); err != nil {
			fmt.Printf("Warning: .env file not found: %v\n", err)
		}
	}

	// Server configs
	Env.Port = getEnvWithDefault("PORT", "3000")

	// Auth configs
	Env.JWTSecret = getRequiredEnv("NL2QUERY_JWT_SECRET", "nl2query_jwt_secret")
	Env.JWTExpirationMilliseconds = getIntEnvWithDefault("NL2QUERY_JWT_EXPIRATION_MILLISECONDS", 1000*60*60*24) // 1 day default
	Env.AuthClientID = getRequiredEnv("NL2QUERY_CLIENT_ID", "")
	Env.AuthClientSecretHash = getRequiredEnv("NL2QUERY_CLIENT_SECRET_HASH", "")

	// Decoder configs
	Env.DecoderProvider = getEnvWithDefault("NL2QUERY_DECODER_PROVIDER", "openai")
	Env.DecoderModel = os.Getenv("NL2QUERY_DECODER_MODEL")
	Env.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	Env.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Redis configs
	Env.RedisEnabled = os.Getenv("NL2QUERY_REDIS_ENABLED") == "true"
	Env.RedisHost = getEnvWithDefault("NL2QUERY_REDIS_HOST", "localhost")
	Env.RedisPort = getEnvWithDefault("NL2QUERY_REDIS_PORT", "6379")
	Env.RedisUsername = os.Getenv("NL2QUERY_REDIS_USERNAME")
	Env.RedisPassword = os.Getenv("NL2QUERY_REDIS_PASSWORD")
	Env.QueryCacheTTLSeconds = getIntEnvWithDefault("NL2QUERY_QUERY_CACHE_TTL_SECONDS", 600)

	return validateConfig()
}

// Helper functions to get environment variables with defaults and validation
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getRequiredEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnvWithDefault(key string, defaultValue int) int {
	strValue := os.Getenv(key)
	if strValue == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(strValue)
	if err != nil {
		fmt.Printf("Warning: Invalid value for %s, using default: %d\n", key, defaultValue)
		return defaultValue
	}
	return value
}

func validateConfig() error {
	if Env.JWTExpirationMilliseconds <= 0 {
		return fmt.Errorf("JWT_EXPIRATION_MILLISECONDS must be positive, got: %d", Env.JWTExpirationMilliseconds)
	}

	if Env.AuthClientID == "" || Env.AuthClientSecretHash == "" {
		return fmt.Errorf("NL2QUERY_CLIENT_ID and NL2QUERY_CLIENT_SECRET_HASH are required")
	}

	switch Env.DecoderProvider {
	case "openai":
		if Env.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when the decoder provider is openai")
		}
	case "gemini":
		if Env.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required when the decoder provider is gemini")
		}
	default:
		return fmt.Errorf("unsupported decoder provider: %s", Env.DecoderProvider)
	}

	return nil
}

// JWTExpiration returns the configured token lifetime.
func JWTExpiration() time.Duration {
	return time.Millisecond * time.Duration(Env.JWTExpirationMilliseconds)
}
