package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config carries everything the server needs from the environment.
// cmd/main.go loads .env via godotenv before calling Load.
type Config struct {
	HTTPAddr  string
	RedisAddr string
	RedisDB   int

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret string
	JWTTTL    time.Duration

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

// Load reads the environment, applying development defaults for anything
// unset except JWT_SECRET, which has no safe default.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:   getenv("HTTP_ADDR", ":8080"),
		RedisAddr:  getenv("REDIS_ADDR", "localhost:6379"),
		RedisDB:    getenvInt("REDIS_DB", 0),
		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBUser:     getenv("DB_USER", "matchmeet"),
		DBPassword: getenv("DB_PASSWORD", "matchmeet"),
		DBName:     getenv("DB_NAME", "matchmeet"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		JWTTTL:     72 * time.Hour,

		SMTPHost:     getenv("SMTP_HOST", "localhost"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getenv("MAIL_FROM", "no-reply@matchmeet.local"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// DSN builds the PostgreSQL connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
