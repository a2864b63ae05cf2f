package picker

// SwatchView is one swatch as the renderer needs it.
type SwatchView struct {
	Index int
	Color Color
	ID    string
	// AssistiveText is read out for the swatch; it is the color's hex value.
	AssistiveText string
	Selected      bool
}

// View is everything a renderer needs for one frame. It is recomputed from
// the controller on every call and never stored back.
type View struct {
	Mode Mode
	Open bool
	Tab  Tab

	ShowSummary  bool
	ShowTabs     bool
	ShowSwatches bool
	ShowCustom   bool
	ShowFooter   bool
	CanCommit    bool

	Committed Color
	Pending   Color

	ContainerRole SwatchRole
	ItemRole      string
	Swatches      []SwatchView

	Fields       Fields
	Announcement string
	IDs          IDs
}

// View projects the current state for rendering.
func (c *Controller) View() View {
	pending := c.editor.Color()
	v := View{
		Mode:          c.mode,
		Open:          c.open,
		Tab:           c.tab,
		Committed:     c.committed,
		Pending:       pending,
		ContainerRole: c.cfg.SwatchRole,
		ItemRole:      c.cfg.SwatchRole.ItemRole(),
		Fields:        c.editor.Fields(),
		Announcement:  c.editor.Announcement(),
		IDs:           c.ids,
	}
	v.IDs.Swatches = append([]string(nil), c.ids.Swatches...)

	switch c.mode {
	case ModeFull:
		v.ShowSummary, v.ShowFooter, v.ShowTabs = true, true, true
	case ModePredefinedOnly, ModeCustomOnly:
		v.ShowSummary, v.ShowFooter = true, true
	case ModeSwatchesOnly:
		// palette only
	}
	if c.open {
		v.ShowSwatches = c.swatchContext()
		v.ShowCustom = c.customContext()
		v.CanCommit = v.ShowCustom
	} else {
		v.ShowTabs = false
		v.ShowFooter = false
	}

	v.Swatches = make([]SwatchView, 0, c.palette.Len())
	for _, e := range c.palette.entries {
		v.Swatches = append(v.Swatches, SwatchView{
			Index:         e.Index,
			Color:         e.Color,
			ID:            c.ids.Swatches[e.Index],
			AssistiveText: e.Color.Hex(),
			Selected:      e.Color.Equal(pending),
		})
	}
	return v
}
