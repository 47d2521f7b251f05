package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds every process-wide setting. It is built once in main and
// handed to the components that need it; nothing reads the environment
// after startup.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	MailgunAPIKey string
	MailgunDomain string
	FromEmail     string
	AdminEmail    string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	MediaRoot    string
	MediaBaseURL string
}

func Load() *Config {
	secret := getEnv("JWT_SECRET", "your-secret-key-change-this-in-production")

	return &Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "clickexpress"),

		JWTSecret:       []byte(secret),
		AccessTokenTTL:  getDuration("ACCESS_TOKEN_TTL", time.Hour),
		RefreshTokenTTL: getDuration("REFRESH_TOKEN_TTL", 7*24*time.Hour),

		MailgunAPIKey: os.Getenv("MAILGUN_API_KEY"),
		MailgunDomain: os.Getenv("MAILGUN_DOMAIN"),
		FromEmail:     getEnv("MAILGUN_FROM_EMAIL", "noreply@clickexpress.com"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@clickexpress.com"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),

		MediaRoot:    getEnv("MEDIA_ROOT", "media"),
		MediaBaseURL: getEnv("MEDIA_BASE_URL", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
