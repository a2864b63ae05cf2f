package picker

import (
	"fmt"
	"image/color"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Color is an immutable sRGB color. The 8-bit channels are canonical; the
// hue, saturation and value it was built from are kept alongside so that
// the hue of a gray and the exact gesture position survive rounding.
// Compare colors with Equal: == and reflect-based equality also compare
// those carried coordinates, so two colors with the same hex can differ.
// The zero value is black.
type Color struct {
	r, g, b uint8

	// h in [0,360), s and v in [0,1]
	h, s, v float64
}

// FromHex parses "#RRGGBB" (any letter case).
func FromHex(s string) (Color, error) {
	if !hexPattern.MatchString(s) {
		return Color{}, fmt.Errorf("%w: %q is not #RRGGBB", ErrInvalidFormat, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	r, g, b := c.RGB255()
	return fromRGB8(r, g, b), nil
}

// MustHex is like FromHex but panics on malformed input. Use it for
// constants only.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FromRGB builds a color from channel values, clamping each to [0,255].
func FromRGB(r, g, b int) Color {
	return fromRGB8(clampChannel(r), clampChannel(g), clampChannel(b))
}

// FromHSL builds a color from hue in degrees and saturation/lightness in
// percent. Hue wraps modulo 360; s and l are clamped to [0,100].
func FromHSL(h, s, l float64) Color {
	s = clamp(s, 0, 100) / 100
	l = clamp(l, 0, 100) / 100
	hs, v := hslToHSV(s, l)
	return build(h, hs, v)
}

// FromHSV builds a color from hue in degrees and saturation/value in
// percent, with the same wrapping and clamping as FromHSL.
func FromHSV(h, s, v float64) Color {
	return build(h, clamp(s, 0, 100)/100, clamp(v, 0, 100)/100)
}

func fromRGB8(r, g, b uint8) Color {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, s, v := c.Hsv()
	return Color{r: r, g: g, b: b, h: wrapHue(h), s: s, v: v}
}

// build goes through HSL with the given hue to land on 8-bit channels.
// s and v are fractions.
func build(h, s, v float64) Color {
	h = wrapHue(h)
	s = clamp(s, 0, 1)
	v = clamp(v, 0, 1)
	sl, l := hsvToHSL(s, v)
	r, g, b := colorful.Hsl(h, sl, l).Clamped().RGB255()
	return Color{r: r, g: g, b: b, h: h, s: s, v: v}
}

// Hex returns "#RRGGBB" with uppercase digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
}

func (c Color) String() string { return c.Hex() }

// RGB returns the channels in [0,255].
func (c Color) RGB() (r, g, b int) {
	return int(c.r), int(c.g), int(c.b)
}

// HSL returns the display projection: hue rounded to the nearest degree in
// [0,360), saturation and lightness rounded to whole percent.
func (c Color) HSL() (h, s, l int) {
	hf, sf, lf := c.HSLFloat()
	return int(math.Round(hf)) % 360, int(math.Round(sf)), int(math.Round(lf))
}

// HSLFloat returns the unrounded HSL coordinates, hue in degrees and
// saturation/lightness in percent. FromHSL(c.HSLFloat()) equals c.
func (c Color) HSLFloat() (h, s, l float64) {
	sl, lf := hsvToHSL(c.s, c.v)
	return c.h, sl * 100, lf * 100
}

// HSV returns hue in degrees and saturation/value in percent.
func (c Color) HSV() (h, s, v float64) {
	return c.h, c.s * 100, c.v * 100
}

// RGBA converts to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: c.r, G: c.g, B: c.b, A: 0xff}
}

// Equal reports whether both colors have the same hex value. The carried
// hue, saturation and value are ignored.
func (c Color) Equal(o Color) bool {
	return c.r == o.r && c.g == o.g && c.b == o.b
}

func hslToHSV(s, l float64) (float64, float64) {
	v := l + s*math.Min(l, 1-l)
	if v == 0 {
		return 0, 0
	}
	return 2 * (1 - l/v), v
}

func hsvToHSL(s, v float64) (float64, float64) {
	l := v * (1 - s/2)
	if l <= 0 || l >= 1 {
		return 0, l
	}
	return (v - l) / math.Min(l, 1-l), l
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-14 wraps to 360 - 1e-14 which rounds back up to 360
	if h >= 360 {
		h = 0
	}
	return h
}

func clamp(x, lo, hi float64) float64 {
	if math.IsNaN(x) {
		return lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clampChannel(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
