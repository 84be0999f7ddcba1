package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Scheduler SchedulerConfig
	SMTP      SMTPConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

// SchedulerConfig drives the background reminder engine. Interval is how
// often a full pipeline tick runs; ReviewDelay is how long after a class's
// start time a same-day review request may fire; BackfillDays bounds the
// manual review backfill.
type SchedulerConfig struct {
	Interval     time.Duration
	ReviewDelay  time.Duration
	BackfillDays int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Env:          getEnv("APP_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             getEnv("DB_DSN", "root:@tcp(localhost:3306)/finding_tutor?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret: getEnv("JWT_SECRET", "change-me-in-production"),
			AccessExpiry: getEnvDuration("JWT_ACCESS_EXPIRY", 24*time.Hour),
			Issuer:       "finding-tutor",
		},
		Scheduler: SchedulerConfig{
			Interval:     getEnvDuration("SCHEDULER_INTERVAL", 10*time.Minute),
			ReviewDelay:  time.Duration(getEnvInt("REVIEW_DELAY_HOURS", 2)) * time.Hour,
			BackfillDays: getEnvInt("REVIEW_BACKFILL_DAYS", 7),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", "no-reply@finding-tutor.local"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
