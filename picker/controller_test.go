package picker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type commitRecorder struct {
	events []CommitEvent
}

func (r *commitRecorder) record(ev CommitEvent) { r.events = append(r.events, ev) }

func newController(t *testing.T, hasPredefined, hasCustom bool, opts ...Option) (*Controller, *commitRecorder) {
	t.Helper()
	rec := &commitRecorder{}
	cfg := DefaultConfig()
	cfg.HasPredefined = hasPredefined
	cfg.HasCustom = hasCustom
	c, err := New(cfg, append([]Option{WithCommitListener(rec.record)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}

func TestDeriveMode(t *testing.T) {
	tests := []struct {
		predefined, custom bool
		want               Mode
	}{
		{true, true, ModeFull},
		{true, false, ModePredefinedOnly},
		{false, true, ModeCustomOnly},
		{false, false, ModeSwatchesOnly},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveMode(tt.predefined, tt.custom))
			c, _ := newController(t, tt.predefined, tt.custom)
			assert.Equal(t, tt.want, c.Mode())
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c, _ := newController(t, true, true)
	s := c.State()
	assert.False(t, s.Open)
	assert.Equal(t, TabPredefined, s.Tab)
	assert.Equal(t, "#5679C0", s.Committed.Hex())
	assert.Equal(t, "#5679C0", s.Pending.Hex())
}

func TestNew_ZeroConfigIsSwatchesOnly(t *testing.T) {
	c, err := New(Config{})
	require.NoError(t, err)
	assert.Equal(t, ModeSwatchesOnly, c.Mode())
	assert.Equal(t, DefaultColorHex, c.Committed().Hex())
	assert.Equal(t, RoleListbox, c.Config().SwatchRole)
}

func TestNew_HostSettings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.IsOpen = true
	cfg.SelectedTabIndex = 1
	cfg.DefaultColor = "#00aea9"
	c, err := New(cfg)
	require.NoError(t, err)
	assert.True(t, c.IsOpen())
	assert.Equal(t, TabCustom, c.ActiveTab())
	assert.Equal(t, "#00AEA9", c.Committed().Hex())
	assert.Equal(t, "#00AEA9", c.Pending().Hex())
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tab index too high", func(c *Config) { c.SelectedTabIndex = 2 }},
		{"negative tab index", func(c *Config) { c.SelectedTabIndex = -1 }},
		{"malformed default color", func(c *Config) { c.DefaultColor = "blue" }},
		{"unknown role", func(c *Config) { c.SwatchRole = "grid" }},
		{"negative step", func(c *Config) { c.GestureStep = -0.1 }},
		{"step too large", func(c *Config) { c.GestureLargeStep = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Panics(t, func() { MustNew(cfg) })
		})
	}

	_, err := New(DefaultConfig(), WithPalette(Palette{}))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestController_OpenResetsPending(t *testing.T) {
	c, _ := newController(t, false, true)
	c.Open()
	require.NoError(t, c.EditCustom(HexEdit{Text: "#FF0000"}))

	// already open: nothing happens
	c.Open()
	assert.Equal(t, "#FF0000", c.Pending().Hex())

	c.Close()
	assert.Equal(t, "#5679C0", c.Pending().Hex())
	c.Open()
	assert.Equal(t, "#5679C0", c.Pending().Hex())
}

func TestController_SelectSwatchCommitsAndCloses(t *testing.T) {
	c, rec := newController(t, true, false)
	c.Open()

	require.NoError(t, c.SelectSwatch(0))

	s := c.State()
	assert.False(t, s.Open)
	assert.Equal(t, "#E3ABEC", s.Committed.Hex())
	assert.Equal(t, "#E3ABEC", s.Pending.Hex())
	require.Len(t, rec.events, 1)
	assert.Equal(t, SourceSwatch, rec.events[0].Source)
	assert.Equal(t, 0, rec.events[0].SwatchIndex)
	assert.Equal(t, "#E3ABEC", rec.events[0].Color.Hex())
}

func TestController_SelectSwatchOutOfRange(t *testing.T) {
	c, rec := newController(t, true, false)
	c.Open()
	before := c.State()

	err := c.SelectSwatch(999)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, before, c.State())
	assert.Empty(t, rec.events)
}

func TestController_SelectSwatchContexts(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		c, _ := newController(t, true, false)
		assert.ErrorIs(t, c.SelectSwatch(0), ErrInvalidTransition)
	})
	t.Run("custom only", func(t *testing.T) {
		c, _ := newController(t, false, true)
		c.Open()
		assert.ErrorIs(t, c.SelectSwatch(0), ErrInvalidTransition)
	})
	t.Run("full on custom tab", func(t *testing.T) {
		c, _ := newController(t, true, true)
		c.Open()
		require.NoError(t, c.SwitchTab(TabCustom))
		assert.ErrorIs(t, c.SelectSwatch(0), ErrInvalidTransition)
	})
	t.Run("full on predefined tab", func(t *testing.T) {
		c, _ := newController(t, true, true)
		c.Open()
		require.NoError(t, c.SelectSwatch(21))
		assert.Equal(t, "#580D8C", c.Committed().Hex())
	})
	t.Run("swatches only", func(t *testing.T) {
		c, rec := newController(t, false, false)
		c.Open()
		require.NoError(t, c.SelectSwatch(3))
		assert.False(t, c.IsOpen())
		assert.Len(t, rec.events, 1)
	})
}

func TestController_CancelKeepsCommitted(t *testing.T) {
	c, rec := newController(t, false, true)
	c1 := c.Committed()

	c.Open()
	require.NoError(t, c.EditCustom(ChannelEdit{Channel: ChannelRed, Text: "255"}))
	require.False(t, c.Pending().Equal(c1))

	c.Cancel()

	s := c.State()
	assert.False(t, s.Open)
	assert.True(t, s.Committed.Equal(c1))
	assert.True(t, s.Pending.Equal(c1))
	assert.Empty(t, rec.events)
}

func TestController_Commit(t *testing.T) {
	c, rec := newController(t, false, true)
	c.Open()
	require.NoError(t, c.EditCustom(HexEdit{Text: "#3cba4c"}))
	require.NoError(t, c.EditCustom(HueEdit{Hue: 200}))
	pending := c.Pending()

	require.NoError(t, c.Commit())

	assert.False(t, c.IsOpen())
	assert.True(t, c.Committed().Equal(pending))
	require.Len(t, rec.events, 1)
	assert.Equal(t, SourceCustom, rec.events[0].Source)
	assert.Equal(t, -1, rec.events[0].SwatchIndex)
	assert.Equal(t, pending.Hex(), rec.events[0].Color.Hex())
}

func TestController_CommitContexts(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		c, _ := newController(t, false, true)
		assert.ErrorIs(t, c.Commit(), ErrInvalidTransition)
	})
	t.Run("predefined only", func(t *testing.T) {
		c, _ := newController(t, true, false)
		c.Open()
		assert.ErrorIs(t, c.Commit(), ErrInvalidTransition)
		assert.True(t, c.IsOpen())
	})
	t.Run("full on predefined tab", func(t *testing.T) {
		c, _ := newController(t, true, true)
		c.Open()
		assert.ErrorIs(t, c.Commit(), ErrInvalidTransition)
	})
}

func TestController_EditCustom(t *testing.T) {
	c, _ := newController(t, false, true)
	c.Open()

	edits := []Edit{
		HexEdit{Text: "#0A2399"},
		ChannelEdit{Channel: ChannelGreen, Text: "200"},
		GestureMove{X: 0.2, Y: 0.3},
		GestureStep{DX: 1, DY: -1},
		GestureStep{DX: -1, Large: true},
		HueEdit{Hue: 45},
	}
	for _, e := range edits {
		require.NoError(t, c.EditCustom(e))
		assert.True(t, c.IsOpen())
		assert.Equal(t, "#5679C0", c.Committed().Hex())
	}
	assert.Equal(t, 45, c.View().Fields.Hue)
}

func TestController_EditCustomRejected(t *testing.T) {
	c, _ := newController(t, false, true)
	assert.ErrorIs(t, c.EditCustom(HexEdit{Text: "#000000"}), ErrInvalidTransition)

	c.Open()
	before := c.State()
	assert.ErrorIs(t, c.EditCustom(HexEdit{Text: "#00000"}), ErrInvalidFormat)
	assert.ErrorIs(t, c.EditCustom(ChannelEdit{Channel: ChannelBlue, Text: ""}), ErrInvalidFormat)
	assert.ErrorIs(t, c.EditCustom(nil), ErrInvalidFormat)
	assert.Equal(t, before, c.State())

	p, _ := newController(t, true, false)
	p.Open()
	assert.ErrorIs(t, p.EditCustom(HueEdit{Hue: 10}), ErrInvalidTransition)
}

func TestController_SwitchTab(t *testing.T) {
	c, _ := newController(t, true, true)
	assert.ErrorIs(t, c.SwitchTab(TabCustom), ErrInvalidTransition)

	c.Open()
	require.NoError(t, c.SwitchTab(TabCustom))
	assert.Equal(t, TabCustom, c.ActiveTab())
	require.NoError(t, c.EditCustom(HexEdit{Text: "#F99221"}))

	require.NoError(t, c.SwitchTab(TabPredefined))
	assert.Equal(t, "#F99221", c.Pending().Hex())
	require.NoError(t, c.SwitchTab(TabCustom))
	assert.Equal(t, "#F99221", c.Pending().Hex())

	assert.ErrorIs(t, c.SwitchTab(Tab(7)), ErrInvalidTransition)
	assert.Equal(t, TabCustom, c.ActiveTab())

	for _, flags := range [][2]bool{{true, false}, {false, true}, {false, false}} {
		other, _ := newController(t, flags[0], flags[1])
		other.Open()
		assert.ErrorIs(t, other.SwitchTab(TabCustom), ErrInvalidTransition, other.Mode().String())
	}
}

func TestController_TabSurvivesClose(t *testing.T) {
	c, _ := newController(t, true, true)
	c.Open()
	require.NoError(t, c.SwitchTab(TabCustom))
	c.Close()
	c.Open()
	assert.Equal(t, TabCustom, c.ActiveTab())
}

func TestController_Toggle(t *testing.T) {
	c, _ := newController(t, true, true)
	c.Toggle()
	assert.True(t, c.IsOpen())
	c.Toggle()
	assert.False(t, c.IsOpen())
}

func TestController_EditSummary(t *testing.T) {
	c, rec := newController(t, true, true)
	require.NoError(t, c.EditSummary("#00ff00"))
	assert.Equal(t, "#00FF00", c.Committed().Hex())
	assert.Equal(t, "#00FF00", c.Pending().Hex())
	require.Len(t, rec.events, 1)
	assert.Equal(t, SourceSummary, rec.events[0].Source)

	assert.ErrorIs(t, c.EditSummary("green"), ErrInvalidFormat)
	assert.Equal(t, "#00FF00", c.Committed().Hex())

	c.Open()
	assert.ErrorIs(t, c.EditSummary("#000000"), ErrInvalidTransition)

	s, _ := newController(t, false, false)
	assert.ErrorIs(t, s.EditSummary("#000000"), ErrInvalidTransition)
}

func TestController_View(t *testing.T) {
	t.Run("swatches only hides summary and footer", func(t *testing.T) {
		c, _ := newController(t, false, false)
		c.Open()
		v := c.View()
		assert.False(t, v.ShowSummary)
		assert.False(t, v.ShowFooter)
		assert.False(t, v.ShowTabs)
		assert.True(t, v.ShowSwatches)
		assert.False(t, v.CanCommit)
	})
	t.Run("full switches content with the tab", func(t *testing.T) {
		c, _ := newController(t, true, true)
		v := c.View()
		assert.True(t, v.ShowSummary)
		assert.False(t, v.ShowSwatches)
		assert.False(t, v.ShowTabs)

		c.Open()
		v = c.View()
		assert.True(t, v.ShowTabs)
		assert.True(t, v.ShowFooter)
		assert.True(t, v.ShowSwatches)
		assert.False(t, v.ShowCustom)
		assert.False(t, v.CanCommit)

		require.NoError(t, c.SwitchTab(TabCustom))
		v = c.View()
		assert.False(t, v.ShowSwatches)
		assert.True(t, v.ShowCustom)
		assert.True(t, v.CanCommit)
		assert.Equal(t, "#5679C0", v.Fields.Hex)
		assert.Equal(t, "Saturation: 55%. Brightness: 75%.", v.Announcement)
	})
	t.Run("predefined only has a footer without Done", func(t *testing.T) {
		c, _ := newController(t, true, false)
		c.Open()
		v := c.View()
		assert.True(t, v.ShowFooter)
		assert.False(t, v.CanCommit)
	})
	t.Run("swatch semantics", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.SwatchRole = RoleMenu
		cfg.DefaultColor = "#5EBBFF"
		c, err := New(cfg)
		require.NoError(t, err)
		v := c.View()
		assert.Equal(t, RoleMenu, v.ContainerRole)
		assert.Equal(t, "menuitem", v.ItemRole)
		require.Len(t, v.Swatches, 28)
		for _, sw := range v.Swatches {
			assert.Equal(t, sw.Color.Hex(), sw.AssistiveText)
			assert.Equal(t, sw.Index == 9 || sw.Index == 16, sw.Selected, "swatch %d", sw.Index)
		}
	})
}

func TestController_IDsAreScopedPerInstance(t *testing.T) {
	a, _ := newController(t, true, true)
	b, _ := newController(t, true, true)
	ia, ib := a.View().IDs, b.View().IDs
	assert.NotEqual(t, ia.HexInput, ib.HexInput)

	seen := map[string]bool{}
	all := append([]string{
		ia.Summary, ia.SummaryInput, ia.Popover, ia.Instructions, ia.HueInput,
		ia.HexInput, ia.RedInput, ia.GreenInput, ia.BlueInput, ia.Tabs[0], ia.Tabs[1],
	}, ia.Swatches...)
	for _, id := range all {
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, ia.GreenInput, ia.ChannelInput(ChannelGreen))
	assert.Len(t, ia.Swatches, 28)
}

func TestController_CustomPalette(t *testing.T) {
	p, err := NewPalette("#111111", "#222222")
	require.NoError(t, err)
	c, _ := newController(t, true, false, WithPalette(p))
	c.Open()
	assert.ErrorIs(t, c.SelectSwatch(2), ErrIndexOutOfRange)
	require.NoError(t, c.SelectSwatch(1))
	assert.Equal(t, "#222222", c.Committed().Hex())
}

func TestController_LogsRejectedEdits(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c, _ := newController(t, false, true, WithLogger(zap.New(core)))
	c.Open()
	_ = c.EditCustom(HexEdit{Text: "bad"})

	entries := logs.FilterMessage("color picker rejected edit custom color").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "custom-only", entries[0].ContextMap()["mode"])
}
