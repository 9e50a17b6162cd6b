package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIBaseURL    = "https://localhost:7001/api"
	defaultAPITimeoutMS  = 10000
	defaultStorageDriver = "sqlite"
	defaultStorageDSN    = "edumart.db"
	defaultRateBurst     = 10
	defaultDemoDelayMS   = 800
)

type Config struct {
	APIBaseURL    string
	APITimeout    time.Duration
	AppEnv        string
	StorageDriver string
	StorageDSN    string
	RedisAddr     string
	RedisPassword string
	RateLimit     float64
	RateBurst     int
	DemoLoadDelay time.Duration
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:    getEnv("API_BASE_URL", defaultAPIBaseURL),
		APITimeout:    time.Duration(getInt("API_TIMEOUT", defaultAPITimeoutMS)) * time.Millisecond,
		AppEnv:        os.Getenv("APP_ENV"),
		StorageDriver: getEnv("STORAGE_DRIVER", defaultStorageDriver),
		StorageDSN:    getEnv("STORAGE_DSN", defaultStorageDSN),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RateLimit:     getFloat("API_RATE_LIMIT", 0),
		RateBurst:     getInt("API_RATE_BURST", defaultRateBurst),
		DemoLoadDelay: time.Duration(getInt("DEMO_LOAD_DELAY", defaultDemoDelayMS)) * time.Millisecond,
	}

	if cfg.StorageDriver == "redis" && cfg.RedisAddr == "" {
		log.Fatal("REDIS_ADDR is required when STORAGE_DRIVER=redis")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return f
}
