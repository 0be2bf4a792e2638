package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Seed     SeedConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	RateLimitPerSec  int
	RateLimitBurst   int
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SeedConfig controls the one-shot bootstrap load of the transaction catalogue
type SeedConfig struct {
	SourceURL    string
	FetchTimeout time.Duration
	BatchSize    int
}

const defaultSeedSource = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:             getEnv("SERVER_PORT", "8001"),
			Host:             getEnv("SERVER_HOST", "localhost"),
			Environment:      getEnv("APP_ENV", "development"),
			ReadTimeout:      getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:     getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout:  getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			RateLimitPerSec:  getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:   getIntEnv("RATE_LIMIT_BURST", 40),
			CORSAllowOrigins: []string{getEnv("CORS_ALLOW_ORIGINS", "*")},
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "analytics_user"),
			Password:        getEnv("DB_PASSWORD", "analytics_password"),
			Name:            getEnv("DB_NAME", "analytics_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		Seed: SeedConfig{
			SourceURL:    getEnv("SEED_SOURCE_URL", defaultSeedSource),
			FetchTimeout: getDurationEnv("SEED_FETCH_TIMEOUT", 30*time.Second),
			BatchSize:    getIntEnv("SEED_BATCH_SIZE", 100),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
