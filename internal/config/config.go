package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	// Artificial action delays. They exist purely so the client can show a
	// busy indicator; none of them are cancellable.
	SaveDelay          time.Duration
	UserResetDelay     time.Duration
	EmployeeResetDelay time.Duration
	NavigateDelay      time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Parsing durations
	var err error
	cfg.SaveDelay, err = parseDuration(getEnv("SAVE_DELAY", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid SAVE_DELAY: %w", err)
	}
	cfg.UserResetDelay, err = parseDuration(getEnv("USER_RESET_DELAY", "500ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid USER_RESET_DELAY: %w", err)
	}
	cfg.EmployeeResetDelay, err = parseDuration(getEnv("EMPLOYEE_RESET_DELAY", "400ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid EMPLOYEE_RESET_DELAY: %w", err)
	}
	cfg.NavigateDelay, err = parseDuration(getEnv("NAVIGATE_DELAY", "800ms"))
	if err != nil {
		return nil, fmt.Errorf("invalid NAVIGATE_DELAY: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
