package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Default lifetime of an issued access token.
const defaultTokenTTL = 30 * time.Minute

// Config holds the application configuration. It is built once at startup
// and passed by reference into the services that need it.
type Config struct {
	AppPort    string        // Application port
	DBUser     string        // Database user
	DBPassword string        // Database password
	DBHost     string        // Database host
	DBPort     string        // Database port
	DBName     string        // Database name
	JWTSecret  string        // JWT signing secret
	TokenTTL   time.Duration // Access token lifetime
	IsProd     bool          // Is production environment
}

// LoadConfig loads configuration from environment variables. The signing
// secret and listening port are required; the process refuses to start
// without them rather than issuing tokens that a restart would invalidate.
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present

	cfg := &Config{
		AppPort:    os.Getenv("APP_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBName:     os.Getenv("DB_NAME"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   defaultTokenTTL,
		IsProd:     os.Getenv("IS_PROD") == "true",
	}
	if minutes, err := strconv.Atoi(os.Getenv("TOKEN_TTL_MINUTES")); err == nil && minutes > 0 {
		cfg.TokenTTL = time.Duration(minutes) * time.Minute
	}
	if cfg.AppPort == "" {
		logrus.Fatal("APP_PORT is required")
	}
	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is required")
	}
	return cfg
}

// DSN builds the MySQL data source name for the configured database.
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}
