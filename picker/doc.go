// Package picker implements the state of an embeddable color picker: a
// color value with synchronized hex, RGB and HSL projections, a fixed swatch
// palette, a custom color editor and the popover controller that ties them
// together. Rendering is left to the host.
//
// A Controller is driven from a single UI goroutine and is not safe for
// concurrent use.
package picker
