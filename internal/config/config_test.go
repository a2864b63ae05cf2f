package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/example/swatchpicker/picker"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "swatchpicker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 480, cfg.Window.Width)
	assert.Equal(t, 520, cfg.Window.Height)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Watch)
	assert.Equal(t, picker.DefaultConfig(), cfg.Picker)
	assert.Equal(t, path, cfg.Source)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
  title: Brand colors
palette_file: brand.yaml
watch: false
picker:
  has_predefined: false
  is_open: true
  default_color: "#e3abec"
  swatch_role: menu
  gesture_large_step: 0.2
`)

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 520, cfg.Window.Height)
	assert.Equal(t, "Brand colors", cfg.Window.Title)
	assert.Equal(t, "brand.yaml", cfg.PaletteFile)
	assert.False(t, cfg.Watch)

	assert.False(t, cfg.Picker.HasPredefined)
	assert.True(t, cfg.Picker.HasCustom)
	assert.True(t, cfg.Picker.IsOpen)
	assert.Equal(t, "#e3abec", cfg.Picker.DefaultColor)
	assert.Equal(t, picker.RoleMenu, cfg.Picker.SwatchRole)
	assert.Equal(t, 0.2, cfg.Picker.GestureLargeStep)
	assert.Equal(t, picker.ModeCustomOnly, cfg.Picker.Mode())

	c, err := picker.New(cfg.Picker)
	require.NoError(t, err)
	assert.Equal(t, "#E3ABEC", c.Committed().Hex())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "window:\n  width: 640\n")
	t.Setenv("SWATCHPICKER_WINDOW_WIDTH", "800")
	t.Setenv("SWATCHPICKER_PICKER_DEFAULT_COLOR", "#112233")
	t.Setenv("SWATCHPICKER_PICKER_HAS_CUSTOM", "false")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, "#112233", cfg.Picker.DefaultColor)
	assert.False(t, cfg.Picker.HasCustom)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(viper.New(), writeConfig(t, "window: [1, 2\n"))
		assert.Error(t, err)
	})
	t.Run("bad window size", func(t *testing.T) {
		_, err := Load(viper.New(), writeConfig(t, "window:\n  height: 0\n"))
		assert.Error(t, err)
	})
	t.Run("unknown swatch role", func(t *testing.T) {
		_, err := Load(viper.New(), writeConfig(t, "picker:\n  swatch_role: grid\n"))
		assert.ErrorIs(t, err, picker.ErrInvalidConfig)
	})
}
