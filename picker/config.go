package picker

import "fmt"

// DefaultColorHex is the color a picker starts with when the host gives none.
const DefaultColorHex = "#5679C0"

// Config holds the host's construction parameters.
type Config struct {
	HasPredefined    bool       `yaml:"has_predefined" mapstructure:"has_predefined"`
	HasCustom        bool       `yaml:"has_custom" mapstructure:"has_custom"`
	IsOpen           bool       `yaml:"is_open" mapstructure:"is_open"`
	SelectedTabIndex int        `yaml:"selected_tab_index" mapstructure:"selected_tab_index"`
	DefaultColor     string     `yaml:"default_color" mapstructure:"default_color"`
	SwatchRole       SwatchRole `yaml:"swatch_role" mapstructure:"swatch_role"`

	// GestureStep and GestureLargeStep are the keyboard step sizes on the
	// saturation/brightness surface, as fractions. Zero means default.
	GestureStep      float64 `yaml:"gesture_step" mapstructure:"gesture_step"`
	GestureLargeStep float64 `yaml:"gesture_large_step" mapstructure:"gesture_large_step"`
}

// DefaultConfig returns a full picker, closed, on the predefined tab.
func DefaultConfig() Config {
	return Config{
		HasPredefined:    true,
		HasCustom:        true,
		DefaultColor:     DefaultColorHex,
		SwatchRole:       RoleListbox,
		GestureStep:      DefaultGestureStep,
		GestureLargeStep: DefaultGestureLargeStep,
	}
}

// Mode derives the display variant from the feature flags.
func (c Config) Mode() Mode { return DeriveMode(c.HasPredefined, c.HasCustom) }

// resolve validates c and fills in defaults for empty values.
func (c Config) resolve() (Config, Color, Tab, error) {
	if c.DefaultColor == "" {
		c.DefaultColor = DefaultColorHex
	}
	def, err := FromHex(c.DefaultColor)
	if err != nil {
		return c, Color{}, 0, fmt.Errorf("%w: default color: %v", ErrInvalidConfig, err)
	}
	tab := Tab(c.SelectedTabIndex)
	if !tab.valid() {
		return c, Color{}, 0, fmt.Errorf("%w: selected tab index %d", ErrInvalidConfig, c.SelectedTabIndex)
	}
	if c.SwatchRole == "" {
		c.SwatchRole = RoleListbox
	}
	if err := c.SwatchRole.Validate(); err != nil {
		return c, Color{}, 0, err
	}
	if c.GestureStep < 0 || c.GestureLargeStep < 0 {
		return c, Color{}, 0, fmt.Errorf("%w: negative gesture step", ErrInvalidConfig)
	}
	if c.GestureStep == 0 {
		c.GestureStep = DefaultGestureStep
	}
	if c.GestureLargeStep == 0 {
		c.GestureLargeStep = DefaultGestureLargeStep
	}
	if c.GestureStep > 1 || c.GestureLargeStep > 1 {
		return c, Color{}, 0, fmt.Errorf("%w: gesture step above 1", ErrInvalidConfig)
	}
	return c, def, tab, nil
}
