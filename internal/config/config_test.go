package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"COLORFY_THEME", "COLORFY_SWATCH_WIDTH", "COLORFY_LISTEN", "COLORFY_METRICS_LISTEN", "COLORFY_API_TOKEN_HASH"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "catppuccin-mocha", cfg.DefaultTheme)
	assert.Equal(t, 8, cfg.SwatchWidth)
	assert.Equal(t, ":8585", cfg.Listen)
	assert.Equal(t, ":9095", cfg.MetricsListen)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COLORFY_THEME", "Dracula")
	t.Setenv("COLORFY_SWATCH_WIDTH", "12")
	t.Setenv("COLORFY_LISTEN", "127.0.0.1:9000")

	cfg := Load()
	assert.Equal(t, "dracula", cfg.DefaultTheme, "theme is lowercased")
	assert.Equal(t, 12, cfg.SwatchWidth)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := &Config{DefaultTheme: "nord", SwatchWidth: 0, Listen: "", MetricsListen: ""}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
	assert.Contains(t, err.Error(), "swatch width")
	assert.Contains(t, err.Error(), "listen address")
}

func TestBadSwatchWidthFallsBack(t *testing.T) {
	t.Setenv("COLORFY_SWATCH_WIDTH", "wide")
	assert.Equal(t, 8, Load().SwatchWidth)
}
