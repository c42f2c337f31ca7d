package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBAutoMigrate bool

	JWTSecret string

	RedisURL          string
	ReferenceCacheTTL time.Duration

	CORSAllowedOrigins []string
}

// LoadEnv reads the process environment. A local .env file, when present,
// fills in variables that are not already set.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		AppAddr:            getEnv("APP_ADDR", ":8080"),
		GinMode:            strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBHost:             getEnv("DB_HOST", "127.0.0.1:3306"),
		DBUser:             getEnv("DB_USER", "root"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             getEnv("DB_NAME", "travel_app"),
		DBAutoMigrate:      getBool("DB_AUTO_MIGRATE", false),
		JWTSecret:          strings.TrimSpace(os.Getenv("JWT_SECRET")),
		RedisURL:           strings.TrimSpace(os.Getenv("REDIS_URL")),
		ReferenceCacheTTL:  getDuration("REFERENCE_CACHE_TTL", time.Minute),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v < 0 {
		return fallback
	}
	return v
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
