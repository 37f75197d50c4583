package config

import (
	"os"
	"time"
)

// Config собирает все настройки сервиса из переменных окружения.
type Config struct {
	Port      string
	DBURL     string
	RedisAddr string
	JWTSecret string
	TokenTTL  time.Duration
}

// Load читает окружение и подставляет значения по умолчанию.
func Load() *Config {
	return &Config{
		Port:      getEnv("PORT", "5003"),
		DBURL:     getEnv("DB_URL", ""),
		RedisAddr: getEnv("REDIS_ADDR", ""),
		JWTSecret: getEnv("JWT_SECRET", "default_secret"),
		TokenTTL:  getEnvDuration("TOKEN_TTL", 2*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
