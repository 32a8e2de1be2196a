// Package config reads process settings for the mazesolve command and the
// HTTP service from the environment, optionally seeded by a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ErrInvalid is wrapped by every error returned for an unparsable variable.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Addr          string    // Address the HTTP service listens on
	BaseURL       string    // Base URL for API routes
	LogLevel      log.Level // Minimum level written by the logger
	Trace         bool      // Log every search expansion
	MaxExpansions int       // Per-phase expansion cap, 0 for unlimited
	MultiKey      bool      // Accept mazes with several key cells
	GinMode       string    // Mode for the Gin framework (release, debug, test)
}

// Load reads the .env file if present and then the environment.
// Unset variables take their defaults.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	var (
		cfg = Config{
			Addr:    getEnvWithDefault("MAZESOLVE_ADDR", ":8080"),
			BaseURL: getEnvWithDefault("MAZESOLVE_BASE_URL", "/api"),
			GinMode: getEnvWithDefault("GIN_MODE", "release"),
		}
		err error
	)

	level := getEnvWithDefault("MAZESOLVE_LOG_LEVEL", "info")
	if cfg.LogLevel, err = log.ParseLevel(level); err != nil {
		return Config{}, fmt.Errorf("%w: MAZESOLVE_LOG_LEVEL=%q", ErrInvalid, level)
	}
	if cfg.Trace, err = getEnvAsBool("MAZESOLVE_TRACE"); err != nil {
		return Config{}, err
	}
	if cfg.MultiKey, err = getEnvAsBool("MAZESOLVE_MULTI_KEY"); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions, err = getEnvAsInt("MAZESOLVE_MAX_EXPANSIONS"); err != nil {
		return Config{}, err
	}
	if cfg.MaxExpansions < 0 {
		return Config{}, fmt.Errorf("%w: MAZESOLVE_MAX_EXPANSIONS=%d is negative", ErrInvalid, cfg.MaxExpansions)
	}

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable; unset means 0.
func getEnvAsInt(key string) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrInvalid, key, valueStr)
	}
	return value, nil
}

// getEnvAsBool parses a boolean variable; unset means false.
func getEnvAsBool(key string) (bool, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %q", ErrInvalid, key, valueStr)
	}
	return value, nil
}
