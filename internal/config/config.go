package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting, loaded from environment variables. A
// .env file is honored in development and silently skipped when absent.
type Config struct {
	Port        int
	DatabaseURL string
	JWTSecret   string

	Redis RedisConfig
	Minio MinioConfig

	Paystack      PaystackConfig
	Email         EmailConfig
	GoogleJWKSURL string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

type PaystackConfig struct {
	SecretKey string
	BaseURL   string
}

type EmailConfig struct {
	APIURL    string
	APIKey    string
	FromEmail string
	SMSAPIURL string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        envInt("PORT", 8080),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Redis: RedisConfig{
			Addr:     envDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Minio: MinioConfig{
			Endpoint:  envDefault("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: envDefault("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: envDefault("MINIO_SECRET_KEY", "minioadmin"),
			UseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
			Bucket:    envDefault("MINIO_BUCKET", "rentora-documents"),
		},
		Paystack: PaystackConfig{
			SecretKey: os.Getenv("PAYSTACK_SECRET_KEY"),
			BaseURL:   envDefault("PAYSTACK_BASE_URL", "https://api.paystack.co"),
		},
		Email: EmailConfig{
			APIURL:    os.Getenv("EMAIL_API_URL"),
			APIKey:    os.Getenv("EMAIL_API_KEY"),
			FromEmail: envDefault("EMAIL_FROM", "no-reply@rentora.app"),
			SMSAPIURL: os.Getenv("SMS_API_URL"),
		},
		GoogleJWKSURL: envDefault("GOOGLE_JWKS_URL", "https://www.googleapis.com/oauth2/v3/certs"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
