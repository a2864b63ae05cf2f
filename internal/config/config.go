// Package config loads the swatchpicker application settings.
//
// Configuration is loaded from (highest to lowest priority):
//  1. Command-line flags bound to the viper instance
//  2. Environment variables (SWATCHPICKER_*)
//  3. Config file (swatchpicker.yaml)
//  4. Defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/swatchpicker/picker"
	"github.com/spf13/viper"
)

const (
	// DefaultConfigFileName is looked up without extension in the search paths.
	DefaultConfigFileName = "swatchpicker"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SWATCHPICKER"
)

// Config is the application configuration.
type Config struct {
	Window      WindowConfig  `mapstructure:"window"`
	FontPath    string        `mapstructure:"font_path"`
	LogLevel    string        `mapstructure:"log_level"`
	PaletteFile string        `mapstructure:"palette_file"`
	Watch       bool          `mapstructure:"watch"`
	Picker      picker.Config `mapstructure:"picker"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

// WindowConfig sizes the demo window.
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// SetDefaults registers every key with its default value. Keys must be
// registered for environment overrides to reach Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 480)
	v.SetDefault("window.height", 520)
	v.SetDefault("window.title", "Swatch Picker")
	v.SetDefault("font_path", "res/Roboto-Regular.ttf")
	v.SetDefault("log_level", "info")
	v.SetDefault("palette_file", "")
	v.SetDefault("watch", true)

	def := picker.DefaultConfig()
	v.SetDefault("picker.has_predefined", def.HasPredefined)
	v.SetDefault("picker.has_custom", def.HasCustom)
	v.SetDefault("picker.is_open", def.IsOpen)
	v.SetDefault("picker.selected_tab_index", def.SelectedTabIndex)
	v.SetDefault("picker.default_color", def.DefaultColor)
	v.SetDefault("picker.swatch_role", string(def.SwatchRole))
	v.SetDefault("picker.gesture_step", def.GestureStep)
	v.SetDefault("picker.gesture_large_step", def.GestureLargeStep)
}

// Load reads configuration into v and decodes it. An empty cfgFile searches
// the current directory and the user config directory.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "swatchpicker"))
		}
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings that are not validated by the picker itself.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return c.Picker.SwatchRole.Validate()
}
