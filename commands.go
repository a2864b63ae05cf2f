package main

import (
	"fmt"

	"github.com/example/swatchpicker/internal/config"
	"github.com/example/swatchpicker/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "swatchpicker",
		Short: "Pick a color from a swatch palette or a custom editor",
		Long: `swatchpicker opens a color picker window with a predefined swatch
palette and a custom color editor.

Configuration is read from swatchpicker.yaml in the current directory or
the user config directory, from SWATCHPICKER_* environment variables and
from flags.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runWindow(v, cfg, logger)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./swatchpicker.yaml)")
	pf.String("palette", "", "palette file to load instead of the reference palette")
	pf.String("log-level", "", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("palette_file", pf.Lookup("palette"))
	_ = v.BindPFlag("log_level", pf.Lookup("log-level"))

	f := root.Flags()
	f.Bool("watch", true, "reload config and palette files when they change")
	f.Bool("open", false, "start with the popover open")
	f.String("color", "", "initial color as #RRGGBB")
	f.Bool("no-predefined", false, "hide the predefined swatches")
	f.Bool("no-custom", false, "hide the custom color editor")
	_ = v.BindPFlag("watch", f.Lookup("watch"))
	_ = v.BindPFlag("picker.is_open", f.Lookup("open"))
	_ = v.BindPFlag("picker.default_color", f.Lookup("color"))
	root.PreRunE = func(cmd *cobra.Command, args []string) error {
		// the feature flags are negated, so they are applied by hand
		if f.Changed("no-predefined") {
			off, _ := f.GetBool("no-predefined")
			v.Set("picker.has_predefined", !off)
		}
		if f.Changed("no-custom") {
			off, _ := f.GetBool("no-custom")
			v.Set("picker.has_custom", !off)
		}
		return nil
	}

	root.AddCommand(newPaletteCmd(v), newConvertCmd())
	return root
}

func newPaletteCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the active palette as colored swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			np, err := loadPalette(cfg.PaletteFile)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Palette(np))
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <#RRGGBB | r,g,b>",
		Short: "Show a color as hex, RGB, HSL and HSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := report.ParseColor(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Describe(c))
			return nil
		},
	}
}
