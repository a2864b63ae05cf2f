package picker

import (
	"fmt"

	"go.uber.org/zap"
)

// State is a snapshot of the controller.
type State struct {
	Open      bool
	Tab       Tab
	Committed Color
	Pending   Color
}

// Source says which interaction produced a commit.
type Source int

const (
	SourceSwatch Source = iota
	SourceCustom
	SourceSummary
)

func (s Source) String() string {
	switch s {
	case SourceSwatch:
		return "swatch"
	case SourceCustom:
		return "custom"
	case SourceSummary:
		return "summary"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// CommitEvent is sent to the host whenever the committed color changes.
type CommitEvent struct {
	Color  Color
	Source Source
	// SwatchIndex is the picked swatch, or -1.
	SwatchIndex int
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithPalette replaces the reference palette.
func WithPalette(p Palette) Option {
	return func(c *Controller) { c.palette = p }
}

// WithCommitListener registers fn to receive every commit.
func WithCommitListener(fn func(CommitEvent)) Option {
	return func(c *Controller) { c.onCommit = fn }
}

// Controller is the picker's state machine. It owns the open/closed state,
// the active tab and the committed and pending colors; the pending color
// lives in the custom editor.
type Controller struct {
	cfg       Config
	mode      Mode
	palette   Palette
	editor    *Editor
	ids       IDs
	open      bool
	tab       Tab
	committed Color

	logger   *zap.Logger
	onCommit func(CommitEvent)
}

// New builds a controller. Configuration mistakes are reported as
// ErrInvalidConfig.
func New(cfg Config, opts ...Option) (*Controller, error) {
	cfg, def, tab, err := cfg.resolve()
	if err != nil {
		return nil, err
	}
	c := &Controller{
		cfg:       cfg,
		mode:      cfg.Mode(),
		palette:   DefaultPalette(),
		open:      cfg.IsOpen,
		tab:       tab,
		committed: def,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.palette.Len() == 0 {
		return nil, fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	}
	c.editor = NewEditor(def, cfg.GestureStep, cfg.GestureLargeStep)
	c.ids = newIDs(c.palette.Len())
	c.logger.Debug("color picker created",
		zap.String("mode", c.mode.String()),
		zap.String("color", def.Hex()),
		zap.Bool("open", c.open))
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config, opts ...Option) *Controller {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Controller) Mode() Mode { return c.mode }
func (c *Controller) Palette() Palette { return c.palette }
func (c *Controller) Config() Config { return c.cfg }
func (c *Controller) IsOpen() bool { return c.open }
func (c *Controller) Committed() Color { return c.committed }
func (c *Controller) Pending() Color { return c.editor.Color() }
func (c *Controller) ActiveTab() Tab { return c.tab }
func (c *Controller) Announcement() string { return c.editor.Announcement() }

// State returns a snapshot of the picker state.
func (c *Controller) State() State {
	return State{Open: c.open, Tab: c.tab, Committed: c.committed, Pending: c.editor.Color()}
}

// Open shows the popover with the pending color reset to the committed one.
// Opening an open picker does nothing.
func (c *Controller) Open() {
	if c.open {
		return
	}
	c.open = true
	c.editor.Reset(c.committed)
	c.logger.Debug("color picker opened", zap.String("tab", c.tab.String()))
}

// Close hides the popover and drops the pending color.
func (c *Controller) Close() {
	if !c.open {
		return
	}
	c.open = false
	c.editor.Reset(c.committed)
	c.logger.Debug("color picker closed")
}

// Cancel is the footer's Cancel button; it behaves like Close.
func (c *Controller) Cancel() {
	if c.open {
		c.logger.Debug("color picker edit cancelled",
			zap.String("pending", c.editor.Color().Hex()),
			zap.String("committed", c.committed.Hex()))
	}
	c.Close()
}

// Toggle opens a closed picker and closes an open one.
func (c *Controller) Toggle() {
	if c.open {
		c.Close()
		return
	}
	c.Open()
}

// SelectSwatch picks the swatch at index, commits it and closes the popover.
func (c *Controller) SelectSwatch(index int) error {
	if !c.open || !c.swatchContext() {
		return c.reject("select swatch", ErrInvalidTransition)
	}
	col, err := c.palette.Select(index)
	if err != nil {
		return c.reject("select swatch", err)
	}
	c.editor.Reset(col)
	c.committed = col
	c.open = false
	c.notify(CommitEvent{Color: col, Source: SourceSwatch, SwatchIndex: index})
	return nil
}

// EditCustom applies one edit to the pending color. The picker stays open.
func (c *Controller) EditCustom(e Edit) error {
	if !c.open || !c.customContext() {
		return c.reject("edit custom color", ErrInvalidTransition)
	}
	if e == nil {
		return c.reject("edit custom color", fmt.Errorf("%w: nil edit", ErrInvalidFormat))
	}
	if err := e.apply(c.editor); err != nil {
		return c.reject("edit custom color", err)
	}
	return nil
}

// Commit is the footer's Done button: the pending color becomes the
// committed color and the popover closes.
func (c *Controller) Commit() error {
	if !c.open || !c.customContext() {
		return c.reject("commit", ErrInvalidTransition)
	}
	c.committed = c.editor.Color()
	c.open = false
	c.notify(CommitEvent{Color: c.committed, Source: SourceCustom, SwatchIndex: -1})
	return nil
}

// SwitchTab changes the active tab of an open full picker. The pending
// color is untouched.
func (c *Controller) SwitchTab(t Tab) error {
	if c.mode != ModeFull || !c.open {
		return c.reject("switch tab", ErrInvalidTransition)
	}
	if !t.valid() {
		return c.reject("switch tab", fmt.Errorf("%w: %v", ErrInvalidTransition, t))
	}
	c.tab = t
	return nil
}

// EditSummary applies text typed into the summary input next to the
// trigger button. It commits directly and only while the popover is closed.
func (c *Controller) EditSummary(text string) error {
	if c.open || c.mode == ModeSwatchesOnly {
		return c.reject("edit summary", ErrInvalidTransition)
	}
	col, err := FromHex(text)
	if err != nil {
		return c.reject("edit summary", err)
	}
	c.committed = col
	c.editor.Reset(col)
	c.notify(CommitEvent{Color: col, Source: SourceSummary, SwatchIndex: -1})
	return nil
}

func (c *Controller) swatchContext() bool {
	switch c.mode {
	case ModeFull:
		return c.tab == TabPredefined
	case ModePredefinedOnly, ModeSwatchesOnly:
		return true
	}
	return false
}

func (c *Controller) customContext() bool {
	switch c.mode {
	case ModeFull:
		return c.tab == TabCustom
	case ModeCustomOnly:
		return true
	}
	return false
}

func (c *Controller) reject(op string, err error) error {
	c.logger.Debug("color picker rejected "+op,
		zap.String("mode", c.mode.String()),
		zap.Bool("open", c.open),
		zap.Error(err))
	return err
}

func (c *Controller) notify(ev CommitEvent) {
	c.logger.Debug("color picker committed",
		zap.String("color", ev.Color.Hex()),
		zap.Stringer("source", ev.Source))
	if c.onCommit != nil {
		c.onCommit(ev)
	}
}

// Edit is one change to the custom color. The implementations are
// HexEdit, ChannelEdit, GestureMove, GestureStep and HueEdit.
type Edit interface {
	apply(e *Editor) error
}

// HexEdit is text typed into the hex input.
type HexEdit struct{ Text string }

// ChannelEdit is text typed into an R, G or B input.
type ChannelEdit struct {
	Channel Channel
	Text    string
}

// GestureMove is a pointer press or drag on the saturation/brightness
// surface, in fractions of its size with Y from the top.
type GestureMove struct{ X, Y float64 }

// GestureStep is an arrow key press on the surface.
type GestureStep struct {
	DX, DY int
	Large  bool
}

// HueEdit is a hue slider change.
type HueEdit struct{ Hue int }

func (h HexEdit) apply(e *Editor) error { return e.SetHex(h.Text) }
func (ch ChannelEdit) apply(e *Editor) error { return e.SetChannel(ch.Channel, ch.Text) }

func (g GestureMove) apply(e *Editor) error {
	e.MoveGesture(g.X, g.Y)
	return nil
}

func (g GestureStep) apply(e *Editor) error {
	e.StepGesture(g.DX, g.DY, g.Large)
	return nil
}

func (h HueEdit) apply(e *Editor) error {
	e.SetHue(h.Hue)
	return nil
}
