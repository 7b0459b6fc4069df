package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// MinJanitorGrace keeps the sweep away from uploads whose record is still being written.
const MinJanitorGrace = time.Minute

const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	Janitor   JanitorConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string
	MaxUploadBytes int64
}

type StorageConfig struct {
	Backend    string
	StorePath  string
	UploadsDir string
	PublicDir  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
}

type DatabaseConfig struct {
	DSN   string
	Table string
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type JanitorConfig struct {
	Schedule string
	Grace    time.Duration
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	grace, err := getEnvAsDuration("JANITOR_GRACE", time.Hour)
	if err != nil {
		return nil, err
	}
	rps, err := getEnvAsFloat("RATE_LIMIT_RPS", 0)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "3000"),
			MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", 0),
		},
		Storage: StorageConfig{
			Backend:    getEnv("STORE_BACKEND", BackendFile),
			StorePath:  getEnv("STORE_PATH", "projects.json"),
			UploadsDir: getEnv("UPLOADS_DIR", "uploads"),
			PublicDir:  getEnv("PUBLIC_DIR", "public"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Key:      getEnv("REDIS_KEY", "submissions:projects"),
		},
		Database: DatabaseConfig{
			DSN:   getEnv("DB_DSN", ""),
			Table: getEnv("DB_TABLE", "project_submissions"),
		},
		RateLimit: RateLimitConfig{
			RPS:   rps,
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 5),
		},
		Janitor: JanitorConfig{
			Schedule: getEnv("JANITOR_SCHEDULE", ""),
			Grace:    grace,
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.Server.MaxUploadBytes < 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must not be negative")
	}
	if c.Storage.UploadsDir == "" {
		return fmt.Errorf("UPLOADS_DIR is required")
	}

	switch c.Storage.Backend {
	case BackendFile:
		if c.Storage.StorePath == "" {
			return fmt.Errorf("STORE_PATH is required for the file backend")
		}
	case BackendRedis:
		if c.Redis.Addr == "" || c.Redis.Key == "" {
			return fmt.Errorf("REDIS_ADDR and REDIS_KEY are required for the redis backend")
		}
	case BackendPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres backend")
		}
		if c.Database.Table == "" {
			return fmt.Errorf("DB_TABLE is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Storage.Backend)
	}

	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	if c.Janitor.Grace < 0 {
		return fmt.Errorf("JANITOR_GRACE must not be negative")
	}
	if c.Janitor.Schedule != "" && c.Janitor.Grace < MinJanitorGrace {
		return fmt.Errorf("JANITOR_GRACE must be at least %s when JANITOR_SCHEDULE is set", MinJanitorGrace)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number for %s: %w", key, err)
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %w", key, err)
	}
	return value, nil
}
