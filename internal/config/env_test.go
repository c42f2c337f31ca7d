package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("DB_HOST", "")
	t.Setenv("REFERENCE_CACHE_TTL", "")
	t.Setenv("DB_AUTO_MIGRATE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	env := LoadEnv()
	if env.AppAddr != ":8080" {
		t.Fatalf("AppAddr = %q", env.AppAddr)
	}
	if env.DBHost != "127.0.0.1:3306" {
		t.Fatalf("DBHost = %q", env.DBHost)
	}
	if env.ReferenceCacheTTL != time.Minute {
		t.Fatalf("ReferenceCacheTTL = %v", env.ReferenceCacheTTL)
	}
	if env.DBAutoMigrate {
		t.Fatalf("DBAutoMigrate should default to false")
	}
	if len(env.CORSAllowedOrigins) != 2 {
		t.Fatalf("unexpected default origins: %v", env.CORSAllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("REFERENCE_CACHE_TTL", "5s")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	env := LoadEnv()
	if env.AppAddr != ":9090" || env.ReferenceCacheTTL != 5*time.Second || !env.DBAutoMigrate {
		t.Fatalf("overrides not applied: %+v", env)
	}
	if len(env.CORSAllowedOrigins) != 2 || env.CORSAllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", env.CORSAllowedOrigins)
	}
}

func TestDSN(t *testing.T) {
	dsn := DSN(Env{DBHost: "db:3306", DBUser: "app", DBPassword: "pw", DBName: "travel"})
	want := "app:pw@tcp(db:3306)/travel"
	if len(dsn) < len(want) || dsn[:len(want)] != want {
		t.Fatalf("DSN = %q, want prefix %q", dsn, want)
	}
}

func TestLoadEnvHasNoDefaultJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if env := LoadEnv(); env.JWTSecret != "" {
		t.Fatalf("JWTSecret must not have a built-in default, got %q", env.JWTSecret)
	}
}
