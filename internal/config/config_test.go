package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/genovar/internal/config/colors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "genovar")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	configPath := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
	return configPath
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Links.RejectDuplicates, "duplicate links are allowed by default")
	assert.Equal(t, DefaultColorScheme(), cfg.ColorScheme)
}

func TestLoadConfigWithFile(t *testing.T) {
	writeConfig(t, `log_level: debug
links:
  reject_duplicates: true
theme:
  accent: "#FF0000"
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.True(t, cfg.Links.RejectDuplicates)
	assert.Equal(t, "#FF0000", cfg.ColorScheme.Accent)

	// Unspecified colors fall back to the preset
	assert.Equal(t, DefaultColorScheme().ErrorFg, cfg.ColorScheme.ErrorFg)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
}

func TestLoadConfigMonochromePreset(t *testing.T) {
	writeConfig(t, `theme:
  preset: monochrome
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, *colors.Monochrome(), cfg.ColorScheme)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigRejectsUnknownLevel(t *testing.T) {
	writeConfig(t, "log_level: loud\n")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestLoadConfigRejectsInvalidYAML(t *testing.T) {
	writeConfig(t, "links: [unclosed\n")

	_, err := Load()
	require.Error(t, err)
}

func TestThemeComesOnlyFromConfigFile(t *testing.T) {
	writeConfig(t, `log_level: warn
theme:
  pathogenic: "#0000FF"
`)

	// A theme file beside the config is not read
	themePath := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("theme:\n  accent: \"#00FF00\"\n"), 0o644))
	t.Setenv("GENOVAR_THEME_FILE", themePath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "#0000FF", cfg.ColorScheme.Pathogenic)
	assert.Equal(t, DefaultColorScheme().Accent, cfg.ColorScheme.Accent)
	assert.Equal(t, slog.LevelWarn, cfg.Level())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"trace", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
