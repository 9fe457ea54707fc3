package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// chdir moves into dir so Load does not pick up a stray .env file.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.App.Port != 8080 {
		t.Errorf("App.Port = %d, want 8080", cfg.App.Port)
	}
	if cfg.Maps.MaxWidth != 2048 || cfg.Maps.MaxMarkers != 50 {
		t.Errorf("Maps = %+v", cfg.Maps)
	}
	if cfg.Maps.UseHTTPS {
		t.Error("UseHTTPS should default to false")
	}
	if cfg.Redis.PresetTTL != time.Hour {
		t.Errorf("Redis.PresetTTL = %v, want 1h", cfg.Redis.PresetTTL)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("GOOGLE_MAPS_API_KEY", "abc")
	t.Setenv("STATIC_MAPS_USE_HTTPS", "true")
	t.Setenv("STATIC_MAPS_MAX_WIDTH", "640")
	t.Setenv("REDIS_PRESET_TTL", "5m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("APP_PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Maps.APIKey != "abc" || !cfg.Maps.UseHTTPS || cfg.Maps.MaxWidth != 640 {
		t.Errorf("Maps = %+v", cfg.Maps)
	}
	if cfg.Redis.PresetTTL != 5*time.Minute {
		t.Errorf("Redis.PresetTTL = %v, want 5m", cfg.Redis.PresetTTL)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.Security.CORSAllowedOrigins, want) {
		t.Errorf("CORSAllowedOrigins = %v, want %v", cfg.Security.CORSAllowedOrigins, want)
	}
	if cfg.App.Port != 8080 {
		t.Errorf("invalid APP_PORT should fall back to 8080, got %d", cfg.App.Port)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	// Unset so the value from .env is used; restored by t.Setenv's cleanup.
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	os.Unsetenv("GOOGLE_MAPS_API_KEY")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("GOOGLE_MAPS_API_KEY=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Maps.APIKey != "from-dotenv" {
		t.Errorf("APIKey = %q, want from-dotenv", cfg.Maps.APIKey)
	}
}

func TestLoadRejectsDefaultSecretInProduction(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load should fail without JWT_SECRET in production")
	}

	t.Setenv("JWT_SECRET", "s3cret")
	if _, err := Load(); err != nil {
		t.Fatalf("Load with JWT_SECRET: %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	cfg.App.Port = 0
	cfg.Maps.MaxMarkers = -1
	err = cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, want := range []string{"APP_PORT", "limits"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestRedisAddr(t *testing.T) {
	c := &RedisConfig{Host: "cache.internal", Port: 6380}
	if got := c.Addr(); got != "cache.internal:6380" {
		t.Errorf("Addr() = %q", got)
	}
}
