// Package textfield is a single-line edit buffer with a caret, used for the
// picker's hex, channel and summary inputs.
package textfield

import "unicode"

// BlinkFrames is how many ticks the caret stays in each blink phase.
const BlinkFrames = 30

// Filter reports whether r may be typed into a field.
type Filter func(r rune) bool

// HexFilter accepts '#' and hexadecimal digits.
func HexFilter(r rune) bool {
	return r == '#' || unicode.Is(unicode.ASCII_Hex_Digit, r)
}

// DigitFilter accepts ASCII digits and a minus sign.
func DigitFilter(r rune) bool {
	return r == '-' || (r >= '0' && r <= '9')
}

// Field holds the draft text of an input while it has focus.
type Field struct {
	buf    []rune
	cursor int
	maxLen int
	filter Filter

	blinkCounter int
	caretVisible bool
}

// New returns a field holding text. maxLen <= 0 means unlimited; a nil
// filter accepts any printable rune.
func New(text string, maxLen int, filter Filter) *Field {
	f := &Field{maxLen: maxLen, filter: filter}
	f.SetText(text)
	return f
}

func (f *Field) Text() string { return string(f.buf) }

func (f *Field) Cursor() int { return f.cursor }

// SetText replaces the buffer and moves the caret to the end.
func (f *Field) SetText(s string) {
	f.buf = []rune(s)
	if f.maxLen > 0 && len(f.buf) > f.maxLen {
		f.buf = f.buf[:f.maxLen]
	}
	f.cursor = len(f.buf)
	f.resetBlink()
}

// Insert types rs at the caret, skipping runes the filter rejects.
func (f *Field) Insert(rs ...rune) {
	for _, r := range rs {
		if !unicode.IsPrint(r) {
			continue
		}
		if f.filter != nil && !f.filter(r) {
			continue
		}
		if f.maxLen > 0 && len(f.buf) >= f.maxLen {
			break
		}
		f.buf = append(f.buf, 0)
		copy(f.buf[f.cursor+1:], f.buf[f.cursor:])
		f.buf[f.cursor] = r
		f.cursor++
	}
	f.resetBlink()
}

// Backspace deletes the rune before the caret.
func (f *Field) Backspace() {
	if f.cursor == 0 {
		return
	}
	f.buf = append(f.buf[:f.cursor-1], f.buf[f.cursor:]...)
	f.cursor--
	f.resetBlink()
}

// Delete deletes the rune under the caret.
func (f *Field) Delete() {
	if f.cursor >= len(f.buf) {
		return
	}
	f.buf = append(f.buf[:f.cursor], f.buf[f.cursor+1:]...)
	f.resetBlink()
}

func (f *Field) Left() {
	if f.cursor > 0 {
		f.cursor--
	}
	f.resetBlink()
}

func (f *Field) Right() {
	if f.cursor < len(f.buf) {
		f.cursor++
	}
	f.resetBlink()
}

func (f *Field) Home() {
	f.cursor = 0
	f.resetBlink()
}

func (f *Field) End() {
	f.cursor = len(f.buf)
	f.resetBlink()
}

// BeforeCaret is the text left of the caret, for measuring where to draw it.
func (f *Field) BeforeCaret() string { return string(f.buf[:f.cursor]) }

// Tick advances the caret blink by one frame.
func (f *Field) Tick() {
	f.blinkCounter++
	if f.blinkCounter >= BlinkFrames {
		f.blinkCounter = 0
		f.caretVisible = !f.caretVisible
	}
}

func (f *Field) CaretVisible() bool { return f.caretVisible }

func (f *Field) resetBlink() {
	f.blinkCounter = 0
	f.caretVisible = true
}
