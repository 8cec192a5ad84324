package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	App      AppConfig
	SCM      SCMConfig
}

// RedisConfig configures the transient run store (spec section 6.2).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// SCMConfig holds the tunable defaults of the propagation engine (spec
// section 6.4). Individual propagate/analyze calls may still override
// these via explicit options; SCMConfig only supplies the process-wide
// fallback.
type SCMConfig struct {
	SampleCount           int
	KDEPointCount         int
	GlobalMinClamp        float64
	GlobalMaxClamp        float64
	DefaultPriorWeight    float64
	DefaultMaxStdDevRatio float64
	RNGSeed               int64
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
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

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "gosim"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		SCM: SCMConfig{
			SampleCount:           getEnvAsInt("SCM_SAMPLE_COUNT", 100),
			KDEPointCount:         getEnvAsInt("SCM_KDE_POINT_COUNT", 50),
			GlobalMinClamp:        getEnvAsFloat("SCM_GLOBAL_MIN_CLAMP", 0.1),
			GlobalMaxClamp:        getEnvAsFloat("SCM_GLOBAL_MAX_CLAMP", 10.0),
			DefaultPriorWeight:    getEnvAsFloat("SCM_DEFAULT_PRIOR_WEIGHT", 0.0),
			DefaultMaxStdDevRatio: getEnvAsFloat("SCM_DEFAULT_MAX_STDDEV_RATIO", 3.0),
			RNGSeed:               int64(getEnvAsInt("SCM_RNG_SEED", 0)),
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

	if c.Database.Host == "" {
		return fmt.Errorf("DB_HOST is required")
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
