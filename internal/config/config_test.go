package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "RATE_LIMIT_RPS", "CURVE_CACHE_TTL", "RATING_UPPER_SPREAD", "MAX_UPLOAD_BYTES"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.RateLimitRPS != 20 {
			t.Errorf("expected 20 rps, got %f", cfg.RateLimitRPS)
		}
		if cfg.CurveCacheTTL != 10*time.Minute {
			t.Errorf("expected 10m cache ttl, got %s", cfg.CurveCacheTTL)
		}
		if cfg.RatingUpperSpread != 0.5 {
			t.Errorf("expected upper spread 0.5, got %f", cfg.RatingUpperSpread)
		}
		if cfg.MaxUploadBytes != 10<<20 {
			t.Errorf("expected 10MiB upload limit, got %d", cfg.MaxUploadBytes)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("RATE_LIMIT_BURST", "5")
		t.Setenv("CURVE_CACHE_TTL", "30s")
		t.Setenv("RATING_LOWER_SPREAD", "-0.25")

		cfg, _ := Load()
		if cfg.Port != "9090" {
			t.Errorf("expected port 9090, got %s", cfg.Port)
		}
		if cfg.RateLimitBurst != 5 {
			t.Errorf("expected burst 5, got %d", cfg.RateLimitBurst)
		}
		if cfg.CurveCacheTTL != 30*time.Second {
			t.Errorf("expected 30s, got %s", cfg.CurveCacheTTL)
		}
		if cfg.RatingLowerSpread != -0.25 {
			t.Errorf("expected -0.25, got %f", cfg.RatingLowerSpread)
		}
	})

	t.Run("invalid_values_fall_back", func(t *testing.T) {
		t.Setenv("RATE_LIMIT_RPS", "fast")
		t.Setenv("CURVE_CACHE_TTL", "forever")

		cfg, _ := Load()
		if cfg.RateLimitRPS != 20 {
			t.Errorf("expected fallback 20, got %f", cfg.RateLimitRPS)
		}
		if cfg.CurveCacheTTL != 10*time.Minute {
			t.Errorf("expected fallback 10m, got %s", cfg.CurveCacheTTL)
		}
	})
}
