// Package report renders colors and palettes for the terminal.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/example/swatchpicker/internal/store"
	"github.com/example/swatchpicker/picker"
)

// Columns matches the popover's swatch grid.
const Columns = 7

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Width(5).Foreground(lipgloss.Color("#8B8B99"))
	chipStyle  = lipgloss.NewStyle().Padding(0, 1).MarginRight(1)
)

// ParseColor accepts "#RRGGBB" or "r,g,b". RGB channels are clamped.
func ParseColor(arg string) (picker.Color, error) {
	arg = strings.TrimSpace(arg)
	if strings.HasPrefix(arg, "#") {
		return picker.FromHex(arg)
	}
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return picker.Color{}, fmt.Errorf("%w: %q is neither #RRGGBB nor r,g,b", picker.ErrInvalidFormat, arg)
	}
	var ch [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return picker.Color{}, fmt.Errorf("%w: channel %q", picker.ErrInvalidFormat, p)
		}
		ch[i] = n
	}
	return picker.FromRGB(ch[0], ch[1], ch[2]), nil
}

// Describe lists every projection of c, one per line.
func Describe(c picker.Color) string {
	r, g, b := c.RGB()
	h, s, l := c.HSL()
	_, sv, vv := c.HSV()
	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render("hex"), chip(c)),
		labelStyle.Render("rgb") + fmt.Sprintf("%d, %d, %d", r, g, b),
		labelStyle.Render("hsl") + fmt.Sprintf("%d, %d%%, %d%%", h, s, l),
		labelStyle.Render("hsv") + fmt.Sprintf("%d, %.0f%%, %.0f%%", h, sv, vv),
	}
	return strings.Join(lines, "\n")
}

// Palette renders np as rows of colored chips labelled with their hex.
func Palette(np store.NamedPalette) string {
	var rows []string
	var row []string
	for _, e := range np.Palette.Entries() {
		row = append(row, chip(e.Color))
		if len(row) == Columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	title := titleStyle.Render(fmt.Sprintf("%s (%d swatches)", np.Name, np.Palette.Len()))
	return lipgloss.JoinVertical(lipgloss.Left, append([]string{title}, rows...)...)
}

func chip(c picker.Color) string {
	fg := lipgloss.Color("#FFFFFF")
	if _, _, l := c.HSL(); l > 60 {
		fg = lipgloss.Color("#000000")
	}
	return chipStyle.Background(lipgloss.Color(c.Hex())).Foreground(fg).Render(c.Hex())
}
