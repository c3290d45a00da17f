package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port          string
	DBConn        string
	LogLevel      string
	JWTSecret     string
	TokenTTL      time.Duration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SenderEmail   string
	AlertSchedule string
}

// NewConfig loads configuration from environment variables, reading a .env file first if one exists
func NewConfig() (*Config, error) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	ttlMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DBConn:        getEnv("DB_CONN", "host=localhost port=5432 user=postgres password=postgres dbname=runway sslmode=disable"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		TokenTTL:      time.Duration(ttlMinutes) * time.Minute,
		SMTPHost:      getEnv("SMTP_HOST", "localhost"),
		SMTPPort:      getEnv("SMTP_PORT", "25"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", "alerts@runway.local"),
		AlertSchedule: getEnv("ALERT_SCHEDULE", ""),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AlertSchedule != "" && cfg.SenderEmail == "" {
		return nil, fmt.Errorf("SENDER_EMAIL is required when ALERT_SCHEDULE is set")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
