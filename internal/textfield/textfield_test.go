package textfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestField_InsertAndDelete(t *testing.T) {
	f := New("#5679", 7, HexFilter)
	assert.Equal(t, 5, f.Cursor())

	f.Insert('c', 'z', '0', '!')
	assert.Equal(t, "#5679c0", f.Text())

	// full
	f.Insert('1')
	assert.Equal(t, "#5679c0", f.Text())

	f.Home()
	f.Right()
	f.Delete()
	assert.Equal(t, "#679c0", f.Text())
	f.Insert('A')
	assert.Equal(t, "#A679c0", f.Text())
	assert.Equal(t, "#A", f.BeforeCaret())

	f.End()
	f.Backspace()
	assert.Equal(t, "#A679c", f.Text())

	f.Home()
	f.Backspace()
	f.Left()
	assert.Equal(t, 0, f.Cursor())
	assert.Equal(t, "#A679c", f.Text())
}

func TestField_SetTextTruncates(t *testing.T) {
	f := New("", 3, DigitFilter)
	f.SetText("12345")
	assert.Equal(t, "123", f.Text())
	assert.Equal(t, 3, f.Cursor())
}

func TestField_NoFilter(t *testing.T) {
	f := New("", 0, nil)
	f.Insert([]rune("hello world\n")...)
	assert.Equal(t, "hello world", f.Text())
}

func TestFilters(t *testing.T) {
	assert.True(t, HexFilter('#'))
	assert.True(t, HexFilter('f'))
	assert.True(t, HexFilter('F'))
	assert.False(t, HexFilter('g'))
	assert.True(t, DigitFilter('-'))
	assert.True(t, DigitFilter('7'))
	assert.False(t, DigitFilter('a'))
}

func TestField_Blink(t *testing.T) {
	f := New("x", 0, nil)
	assert.True(t, f.CaretVisible())
	for i := 0; i < BlinkFrames; i++ {
		f.Tick()
	}
	assert.False(t, f.CaretVisible())
	f.Insert('y')
	assert.True(t, f.CaretVisible())
}
