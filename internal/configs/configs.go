/*
Package configs is responsible for loading and parsing the application's
configuration settings.

Server parameters come from environment variables: the running environment,
port, CORS allowed origins, the session token secret, the room store location,
and the translation service credentials.
*/
package configs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig contains all configuration parameters required for the application to run.
// All configuration values are loaded from environment variables.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string
	JWTSecret      string

	// Room Store Settings. StorePath selects the file backend; a non-empty
	// DatabaseDSN switches to the Postgres backend instead.
	StorePath   string
	DatabaseDSN string

	// Translation Service Settings
	TranslateBaseURL string
	TranslateAPIKey  string
	TranslateModel   string
}

// LoadConfig reads and parses the application configuration from environment
// variables, providing development defaults and validating as it goes.
func LoadConfig() (*AppConfig, error) {
	cfg := &AppConfig{}

	// --- General Server Settings ---
	cfg.Environment = os.Getenv("ENVIRONMENT")
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT environment variable: %w", err)
	}
	cfg.Port = port

	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	originsStr := os.Getenv("ALLOWED_ORIGINS")
	if originsStr != "" {
		origins := strings.Split(originsStr, ",")
		for _, origin := range origins {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if cfg.Environment == "development" {
		if jwtSecret == "" {
			jwtSecret = "your_default_insecure_secret_key_change_me"
		}
	} else {
		if jwtSecret == "" {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
	}
	cfg.JWTSecret = jwtSecret

	// --- Room Store Settings ---
	cfg.StorePath = os.Getenv("STORE_PATH")
	if cfg.StorePath == "" {
		cfg.StorePath = "data/rooms.json"
	}

	cfg.DatabaseDSN = os.Getenv("DATABASE_URL")

	// --- Translation Service Settings ---
	cfg.TranslateBaseURL = os.Getenv("TRANSLATE_BASE_URL")
	cfg.TranslateModel = os.Getenv("TRANSLATE_MODEL")

	cfg.TranslateAPIKey = os.Getenv("TRANSLATE_API_KEY")
	if cfg.TranslateAPIKey == "" && cfg.Environment != "development" {
		return nil, fmt.Errorf("TRANSLATE_API_KEY environment variable is required in %s environment", cfg.Environment)
	}

	return cfg, nil
}
