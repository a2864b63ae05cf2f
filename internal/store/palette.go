// Package store reads and writes palette files.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/swatchpicker/picker"
	"gopkg.in/yaml.v3"
)

// paletteFile is the YAML layout of a palette file.
type paletteFile struct {
	Name     string   `yaml:"name"`
	Swatches []string `yaml:"swatches"`
}

// NamedPalette is a palette together with the name stored in its file.
type NamedPalette struct {
	Name    string
	Palette picker.Palette
}

// LoadPalette reads a palette file. Swatches keep their file order.
func LoadPalette(path string) (NamedPalette, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return NamedPalette{}, err
	}
	var pf paletteFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return NamedPalette{}, fmt.Errorf("parse %s: %w", path, err)
	}
	p, err := picker.NewPalette(pf.Swatches...)
	if err != nil {
		return NamedPalette{}, fmt.Errorf("palette %s: %w", path, err)
	}
	name := pf.Name
	if name == "" {
		name = filepath.Base(path)
	}
	return NamedPalette{Name: name, Palette: p}, nil
}

// SavePalette writes p to path, creating parent directories as needed.
func SavePalette(path string, np NamedPalette) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(&paletteFile{Name: np.Name, Swatches: np.Palette.Hexes()}); err != nil {
		return err
	}
	return enc.Close()
}
