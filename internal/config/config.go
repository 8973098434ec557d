package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Cache TTL for the rendered index page. The original behaviour is a fixed
// 20-second window; CACHE_TTL_SECONDS overrides it for local experiments.
const defaultCacheTTL = 20 * time.Second

const defaultStatsInterval = 60 * time.Second

func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Info("No .env file found, using system environment variables")
	}

	if os.Getenv("DB_DSN") == "" {
		Logger.Fatal("DB_DSN is not set")
	}

	if os.Getenv("REDIS_ADDR") == "" {
		Logger.Fatal("REDIS_ADDR is not set")
	}

	if os.Getenv("JWT_SECRET") == "" {
		Logger.Fatal("JWT_SECRET is not set")
	}
}

func CacheTTL() time.Duration {
	return durationFromEnv("CACHE_TTL_SECONDS", defaultCacheTTL)
}

func StatsInterval() time.Duration {
	return durationFromEnv("STATS_INTERVAL_SECONDS", defaultStatsInterval)
}

func MediaRoot() string {
	if root := os.Getenv("MEDIA_ROOT"); root != "" {
		return root
	}
	return "media"
}

func durationFromEnv(name string, fallback time.Duration) time.Duration {
	seconds, err := strconv.Atoi(os.Getenv(name))
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
