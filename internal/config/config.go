package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env            string
	Port           int
	DBURL          string
	AllowedOrigins []string
	OtelEndpoint   string

	// optional bootstrap account created at startup when missing
	SeedUsername string
	SeedPassword string
	SeedName     string
}

func Load() Config {
	// best effort, real environment always wins over .env
	_ = godotenv.Load()

	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 8080)
	dbURL := buildDBURL()

	origins := strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ",")

	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return Config{
		Env:            env,
		Port:           port,
		DBURL:          dbURL,
		AllowedOrigins: origins,
		OtelEndpoint:   getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		SeedUsername:   getEnv("SEED_USERNAME", ""),
		SeedPassword:   getEnv("SEED_PASSWORD", ""),
		SeedName:       getEnv("SEED_NAME", "Runtrack User"),
	}
}

func buildDBURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "runtrack")
	pass := getEnv("DB_PASSWORD", "runtrack")
	name := getEnv("DB_NAME", "runtrack")
	ssl := getEnv("DB_SSLMODE", "disable")

	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=" + ssl
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}
