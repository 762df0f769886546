package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is read from the environment, optionally seeded by a .env file.
type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	RateLimitRPS    float64 // 0 disables the limiter
	ShutdownTimeout time.Duration
}

type DatasetConfig struct {
	Path string // empty means the embedded dataset
}

type LoggingConfig struct {
	Level         string // debug, info, warn, error
	Format        string // json, pretty, auto
	FileEnabled   bool
	FilePath      string
	RotationSize  int // MB
	RetentionDays int
}

// Load reads envFiles (default .env) when present and builds the Config.
// A missing env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, err
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			RateLimitRPS:    getEnvFloat("RATE_LIMIT_RPS", 20),
			ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Dataset: DatasetConfig{
			Path: getEnv("TICKERSYMBOLS_DATA", ""),
		},
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Format:        getEnv("LOG_FORMAT", "auto"),
			FileEnabled:   getEnvBool("LOG_FILE_ENABLED", false),
			FilePath:      getEnv("LOG_PATH", "logs"),
			RotationSize:  getEnvInt("LOG_ROTATION_MB", 100),
			RetentionDays: getEnvInt("LOG_RETENTION_DAYS", 7),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return fallback
}
