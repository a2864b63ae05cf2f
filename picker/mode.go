package picker

import "fmt"

// Mode is the display variant chosen by the host's feature flags.
type Mode int

const (
	ModeFull Mode = iota
	ModePredefinedOnly
	ModeCustomOnly
	// ModeSwatchesOnly shows the palette alone, without summary or footer.
	ModeSwatchesOnly
)

// DeriveMode maps the two host flags onto a Mode.
func DeriveMode(hasPredefined, hasCustom bool) Mode {
	switch {
	case hasPredefined && hasCustom:
		return ModeFull
	case hasPredefined:
		return ModePredefinedOnly
	case hasCustom:
		return ModeCustomOnly
	default:
		return ModeSwatchesOnly
	}
}

func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModePredefinedOnly:
		return "predefined-only"
	case ModeCustomOnly:
		return "custom-only"
	case ModeSwatchesOnly:
		return "swatches-only"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Tab is the active page of the popover in ModeFull.
type Tab int

const (
	TabPredefined Tab = iota
	TabCustom
)

var tabTitles = [...]string{TabPredefined: "Default", TabCustom: "Custom"}

func (t Tab) String() string {
	if t.valid() {
		return tabTitles[t]
	}
	return fmt.Sprintf("Tab(%d)", int(t))
}

func (t Tab) valid() bool { return t == TabPredefined || t == TabCustom }

// Tabs lists the tabs in display order.
func Tabs() []Tab { return []Tab{TabPredefined, TabCustom} }
