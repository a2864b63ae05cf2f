package picker

import "errors"

var (
	// ErrInvalidFormat is returned when text cannot be read as a color or a
	// channel value. The offending edit is dropped.
	ErrInvalidFormat = errors.New("invalid color format")

	// ErrIndexOutOfRange is returned when a swatch index is outside the palette.
	ErrIndexOutOfRange = errors.New("swatch index out of range")

	// ErrInvalidTransition is returned when an operation is not available in
	// the picker's current state or mode.
	ErrInvalidTransition = errors.New("invalid picker transition")

	// ErrInvalidConfig is returned by New for host configuration mistakes.
	ErrInvalidConfig = errors.New("invalid picker config")
)
