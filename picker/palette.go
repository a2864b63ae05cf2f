package picker

import (
	"fmt"
)

// referenceSwatches is the default catalog in display order. #5EBBFF is
// listed twice on purpose; entries are addressed by index, not by value.
var referenceSwatches = []string{
	"#E3ABEC", "#C2DBF7", "#9FD6FF", "#9DE7DA", "#9DF0C0", "#FFF099", "#FED49A",
	"#D073E0", "#86BAF3", "#5EBBFF", "#44D8BE", "#3BE282", "#FFE654", "#FFB758",
	"#BD35BD", "#5779C1", "#5EBBFF", "#00AEA9", "#3CBA4C", "#F5BC25", "#F99221",
	"#580D8C", "#001970", "#0A2399", "#0B7477", "#0B6B50", "#B67E11", "#B85D0D",
}

// SwatchEntry is one predefined color and its position in the catalog.
type SwatchEntry struct {
	Color Color
	Index int
}

// Palette is a fixed, ordered catalog of swatches.
type Palette struct {
	entries []SwatchEntry
}

// NewPalette builds a palette from hex strings in display order.
func NewPalette(hexes ...string) (Palette, error) {
	if len(hexes) == 0 {
		return Palette{}, fmt.Errorf("%w: palette has no swatches", ErrInvalidConfig)
	}
	entries := make([]SwatchEntry, 0, len(hexes))
	for i, h := range hexes {
		c, err := FromHex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("swatch %d: %w", i, err)
		}
		entries = append(entries, SwatchEntry{Color: c, Index: i})
	}
	return Palette{entries: entries}, nil
}

// DefaultPalette returns the 28-swatch reference palette.
func DefaultPalette() Palette {
	p, err := NewPalette(referenceSwatches...)
	if err != nil {
		panic(err)
	}
	return p
}

// Len returns the number of swatches.
func (p Palette) Len() int { return len(p.entries) }

// Entries returns a copy of the catalog.
func (p Palette) Entries() []SwatchEntry {
	out := make([]SwatchEntry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Hexes returns the swatch colors as hex strings in display order.
func (p Palette) Hexes() []string {
	out := make([]string, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Color.Hex()
	}
	return out
}

// Select returns the color at index.
func (p Palette) Select(index int) (Color, error) {
	if index < 0 || index >= len(p.entries) {
		return Color{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(p.entries))
	}
	return p.entries[index].Color, nil
}

// SwatchRole is the accessibility role of the swatch container.
type SwatchRole string

const (
	RoleListbox SwatchRole = "listbox"
	RoleMenu    SwatchRole = "menu"
)

// ParseSwatchRole validates s against the known roles.
func ParseSwatchRole(s string) (SwatchRole, error) {
	r := SwatchRole(s)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r SwatchRole) Validate() error {
	switch r {
	case RoleListbox, RoleMenu:
		return nil
	}
	return fmt.Errorf("%w: swatch role %q, want %q or %q", ErrInvalidConfig, string(r), RoleListbox, RoleMenu)
}

// ItemRole is the role each swatch takes inside the container.
func (r SwatchRole) ItemRole() string {
	if r == RoleMenu {
		return "menuitem"
	}
	return "option"
}

func (r *SwatchRole) UnmarshalText(b []byte) error {
	parsed, err := ParseSwatchRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
