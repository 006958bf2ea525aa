package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App   AppConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AppConfig struct {
	Name         string
	Environment  string // development, staging, production
	Port         string
	TemplatesDir string
	StaticDir    string
}

type MongoConfig struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    int
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Password string
	DB       int
	// TTL for the catalog summary counts
	SummaryTTL time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "Local Library"),
			Environment:  getEnv("APP_ENV", "development"),
			Port:         getEnv("APP_PORT", "8080"),
			TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),
			StaticDir:    getEnv("STATIC_DIR", "web/static"),
		},
		Mongo: MongoConfig{
			URI:            getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database:       getEnv("MONGO_DB", "local_library"),
			ConnectTimeout: time.Duration(getEnvInt("MONGO_CONNECT_TIMEOUT", 10)) * time.Second,
			MaxPoolSize:    getEnvInt("MONGO_MAX_POOL", 25),
		},
		Redis: RedisConfig{
			Enabled:    getEnvBool("REDIS_ENABLED", true),
			Host:       getEnv("REDIS_HOST", "localhost:6379"),
			Password:   getEnv("REDIS_PASSWORD", ""),
			DB:         getEnvInt("REDIS_DB", 0),
			SummaryTTL: time.Duration(getEnvInt("SUMMARY_CACHE_TTL", 30)) * time.Second,
		},
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
