package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"colorfy/palette"
)

// Config holds tool and server settings, loaded from environment variables.
// main loads a .env file first, so both forms work the same way.
type Config struct {
	// DefaultTheme is the palette used when a command or request names none.
	DefaultTheme string

	// SwatchWidth is the character width of color preview blocks.
	SwatchWidth int

	// Listen is the palette server bind address.
	Listen string

	// MetricsListen is the prometheus endpoint bind address.
	MetricsListen string

	// APITokenHash is a bcrypt hash; when set, API requests must carry the
	// matching bearer token. Empty leaves the API open.
	APITokenHash string
}

// Load reads configuration from the environment with sensible defaults.
func Load() *Config {
	return &Config{
		DefaultTheme:  strings.ToLower(getEnvOrDefault("COLORFY_THEME", "catppuccin-mocha")),
		SwatchWidth:   parseIntOrDefault(os.Getenv("COLORFY_SWATCH_WIDTH"), 8),
		Listen:        getEnvOrDefault("COLORFY_LISTEN", ":8585"),
		MetricsListen: getEnvOrDefault("COLORFY_METRICS_LISTEN", ":9095"),
		APITokenHash:  os.Getenv("COLORFY_API_TOKEN_HASH"),
	}
}

// Validate checks the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var errs []string

	if _, ok := palette.Themes[c.DefaultTheme]; !ok {
		errs = append(errs, fmt.Sprintf("unknown theme %q (known: %s)",
			c.DefaultTheme, strings.Join(palette.ThemeNames(), ", ")))
	}
	if c.SwatchWidth <= 0 {
		errs = append(errs, "swatch width must be positive")
	}
	if c.Listen == "" {
		errs = append(errs, "listen address is required")
	}
	if c.MetricsListen == "" {
		errs = append(errs, "metrics listen address is required")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}
	return nil
}

// getEnvOrDefault returns an environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseIntOrDefault parses a string as int, returning the default on error.
func parseIntOrDefault(s string, defaultValue int) int {
	if s == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}
	return v
}
