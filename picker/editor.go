package picker

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultGestureStep      = 0.01
	DefaultGestureLargeStep = 0.10
)

// Channel names one of the R, G, B inputs.
type Channel int

const (
	ChannelRed Channel = iota
	ChannelGreen
	ChannelBlue
)

func (ch Channel) String() string {
	switch ch {
	case ChannelRed:
		return "red"
	case ChannelGreen:
		return "green"
	case ChannelBlue:
		return "blue"
	}
	return fmt.Sprintf("Channel(%d)", int(ch))
}

// Fields is what the custom editor displays. Every value is derived from
// the editor's single color.
type Fields struct {
	Hex   string
	Red   string
	Green string
	Blue  string

	// Hue is the slider value in [0,360].
	Hue int

	// Saturation and Brightness are the gesture coordinates in [0,1].
	Saturation float64
	Brightness float64

	// X and Y are the pointer position as fractions of the surface,
	// Y measured from the top.
	X, Y float64
}

// Editor keeps the hex text, the R/G/B inputs, the hue slider and the
// saturation/brightness surface in step. It stores one Color; everything
// else is projected from it.
type Editor struct {
	color     Color
	step      float64
	largeStep float64

	// hueEnd is set while the slider rests on 360, which the color itself
	// stores as hue 0.
	hueEnd bool
}

// NewEditor starts editing c. Non-positive steps fall back to the defaults.
func NewEditor(c Color, step, largeStep float64) *Editor {
	if step <= 0 {
		step = DefaultGestureStep
	}
	if largeStep <= 0 {
		largeStep = DefaultGestureLargeStep
	}
	return &Editor{color: c, step: step, largeStep: largeStep}
}

// Color returns the color being edited.
func (e *Editor) Color() Color { return e.color }

// Reset replaces the color being edited.
func (e *Editor) Reset(c Color) { e.set(c) }

func (e *Editor) set(c Color) {
	e.color = c
	e.hueEnd = false
}

func (e *Editor) Fields() Fields {
	r, g, b := e.color.RGB()
	h, _, _ := e.color.HSL()
	if e.hueEnd && h == 0 {
		h = 360
	}
	s, v := e.color.s, e.color.v
	return Fields{
		Hex:        e.color.Hex(),
		Red:        strconv.Itoa(r),
		Green:      strconv.Itoa(g),
		Blue:       strconv.Itoa(b),
		Hue:        h,
		Saturation: s,
		Brightness: v,
		X:          s,
		Y:          1 - v,
	}
}

// SetHex applies text typed into the hex input. Malformed text leaves the
// color unchanged.
func (e *Editor) SetHex(text string) error {
	c, err := FromHex(text)
	if err != nil {
		return err
	}
	e.set(c)
	return nil
}

// SetChannel applies text typed into one of the R, G, B inputs. The value is
// clamped to [0,255]; text that is not an integer leaves the color unchanged.
func (e *Editor) SetChannel(ch Channel, text string) error {
	n, err := parseChannel(text)
	if err != nil {
		return fmt.Errorf("%w: %s %q", ErrInvalidFormat, ch, text)
	}
	r, g, b := e.color.RGB()
	switch ch {
	case ChannelRed:
		r = n
	case ChannelGreen:
		g = n
	case ChannelBlue:
		b = n
	default:
		return fmt.Errorf("%w: unknown channel %d", ErrInvalidFormat, int(ch))
	}
	e.set(FromRGB(r, g, b))
	return nil
}

func parseChannel(text string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		// ParseInt saturates on overflow, which clamps the same way
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return int(clamp(float64(n), 0, 255)), nil
		}
		return 0, err
	}
	return int(clamp(float64(n), 0, 255)), nil
}

// MoveGesture places the pointer at (x, y), fractions of the surface with y
// measured from the top. The hue is kept.
func (e *Editor) MoveGesture(x, y float64) {
	e.color = build(e.color.h, clamp(x, 0, 1), 1-clamp(y, 0, 1))
}

// StepGesture moves the pointer by whole keyboard steps. Positive dx raises
// saturation, positive dy raises brightness.
func (e *Editor) StepGesture(dx, dy int, large bool) {
	step := e.step
	if large {
		step = e.largeStep
	}
	s := e.color.s + float64(dx)*step
	v := e.color.v + float64(dy)*step
	e.color = build(e.color.h, s, v)
}

// SetHue moves the hue slider, clamped to [0,360]; saturation and
// lightness are kept. 360 paints the same color as 0 but the slider stays
// at its right end.
func (e *Editor) SetHue(h int) {
	if h < 0 {
		h = 0
	}
	if h > 360 {
		h = 360
	}
	e.color = build(float64(h), e.color.s, e.color.v)
	e.hueEnd = h == 360
}

// Announcement is the live text read out after every gesture update.
func (e *Editor) Announcement() string {
	return fmt.Sprintf("Saturation: %d%%. Brightness: %d%%.",
		int(math.Round(e.color.s*100)), int(math.Round(e.color.v*100)))
}
