package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Spotify  SpotifyConfig
	Gemini   GeminiConfig
	OpenAI   OpenAIConfig
	Redis    RedisConfig
	Resolver ResolverConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port int
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
}

type GeminiConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey         string
	EnableFallback bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// ResolverConfig tunes the recommendation waterfall.
type ResolverConfig struct {
	TargetCount      int
	FeatureTolerance float64
	ValidationMode   string
}

type LoggingConfig struct {
	Level string
	File  string
}

const (
	ValidationStrict  = "strict"
	ValidationLenient = "lenient"
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 8080),
		},
		Spotify: SpotifyConfig{
			ClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
			ClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Resolver: ResolverConfig{
			TargetCount:      getEnvInt("RESOLVER_TARGET_COUNT", 6),
			FeatureTolerance: getEnvFloat("RESOLVER_FEATURE_TOLERANCE", 0.4),
			ValidationMode:   strings.ToLower(getEnv("RESOLVER_VALIDATION_MODE", ValidationLenient)),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Spotify.ClientID == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_ID is required")
	}
	if c.Spotify.ClientSecret == "" {
		return fmt.Errorf("SPOTIFY_CLIENT_SECRET is required")
	}
	if c.Gemini.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	if c.Resolver.TargetCount <= 0 {
		return fmt.Errorf("RESOLVER_TARGET_COUNT must be positive")
	}
	if c.Resolver.FeatureTolerance <= 0 || c.Resolver.FeatureTolerance > 1 {
		return fmt.Errorf("RESOLVER_FEATURE_TOLERANCE must be between 0 and 1")
	}
	if c.Resolver.ValidationMode != ValidationStrict && c.Resolver.ValidationMode != ValidationLenient {
		return fmt.Errorf("RESOLVER_VALIDATION_MODE must be %q or %q", ValidationStrict, ValidationLenient)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
