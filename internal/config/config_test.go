package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "http://api.test/api")
		t.Setenv("API_TIMEOUT", "2500")
		t.Setenv("APP_ENV", "test")
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("STORAGE_DSN", "")
		t.Setenv("API_RATE_LIMIT", "5.5")
		t.Setenv("API_RATE_BURST", "3")
		t.Setenv("DEMO_LOAD_DELAY", "0")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "http://api.test/api", cfg.APIBaseURL)
		assert.Equal(t, 2500*time.Millisecond, cfg.APITimeout)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "memory", cfg.StorageDriver)
		assert.Equal(t, defaultStorageDSN, cfg.StorageDSN)
		assert.Equal(t, 5.5, cfg.RateLimit)
		assert.Equal(t, 3, cfg.RateBurst)
		assert.Equal(t, time.Duration(0), cfg.DemoLoadDelay)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "")
		t.Setenv("API_TIMEOUT", "")
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("API_RATE_LIMIT", "")
		t.Setenv("API_RATE_BURST", "")
		t.Setenv("DEMO_LOAD_DELAY", "")

		cfg := LoadConfig()

		assert.Equal(t, defaultAPIBaseURL, cfg.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.APITimeout)
		assert.Equal(t, "sqlite", cfg.StorageDriver)
		assert.Equal(t, float64(0), cfg.RateLimit)
		assert.Equal(t, defaultRateBurst, cfg.RateBurst)
		assert.Equal(t, 800*time.Millisecond, cfg.DemoLoadDelay)
	})

	t.Run("Invalid numbers fall back", func(t *testing.T) {
		t.Setenv("API_TIMEOUT", "soon")
		t.Setenv("API_RATE_LIMIT", "-1")

		cfg := LoadConfig()

		assert.Equal(t, 10*time.Second, cfg.APITimeout)
		assert.Equal(t, float64(0), cfg.RateLimit)
	})
}
