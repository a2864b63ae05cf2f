// Package layout computes where each part of the color picker sits on
// screen and maps pointer positions back to picker targets.
package layout

import (
	"image"
	"math"
)

// Layout constants for picker drawing and hit testing
const (
	SummaryHeight      = 24
	SummaryLabelW      = 100
	SummaryButtonW     = 44
	SummaryInputW      = 100
	SummaryGap         = 4
	PopoverGap         = 8
	PopoverW           = 300
	PopoverPadding     = 12
	PopoverTitleHeight = 20
	TabW               = 86
	TabH               = 24
	TabGap             = 4
	SwatchColumns      = 7
	SwatchSize         = 32
	SwatchGap          = 8
	SurfaceH           = 140
	HueH               = 16
	PreviewSize        = 24
	InputH             = 24
	HexInputW          = 96
	ChannelInputW      = 52
	ChannelGap         = 6
	ButtonW            = 74
	ButtonH            = 24
	SectionGap         = 8
)

// InnerW is the usable width inside the popover padding.
const InnerW = PopoverW - 2*PopoverPadding

// Options say which parts of the picker are visible.
type Options struct {
	ShowSummary  bool
	Open         bool
	ShowTabs     bool
	ShowSwatches bool
	ShowCustom   bool
	ShowFooter   bool
	Swatches     int
}

// Bounds holds the on-screen rectangles of every picker part. Hidden parts
// have empty rectangles, which contain no points.
type Bounds struct {
	SummaryLabel  image.Rectangle
	SummaryButton image.Rectangle
	SummaryInput  image.Rectangle

	Popover  image.Rectangle
	Title    image.Point
	Tabs     []image.Rectangle
	Swatches []image.Rectangle

	Surface  image.Rectangle
	Hue      image.Rectangle
	Preview  image.Rectangle
	Hex      image.Rectangle
	Channels [3]image.Rectangle

	Cancel image.Rectangle
	Done   image.Rectangle
}

// Compute lays the picker out with its top-left corner at origin.
func Compute(origin image.Point, o Options) Bounds {
	var b Bounds
	x, y := origin.X, origin.Y

	if o.ShowSummary {
		b.SummaryLabel = image.Rect(x, y, x+SummaryLabelW, y+SummaryHeight)
		bx := x + SummaryLabelW + SummaryGap
		b.SummaryButton = image.Rect(bx, y, bx+SummaryButtonW, y+SummaryHeight)
		ix := bx + SummaryButtonW + SummaryGap
		b.SummaryInput = image.Rect(ix, y, ix+SummaryInputW, y+SummaryHeight)
		y += SummaryHeight + PopoverGap
	}
	if !o.Open {
		return b
	}

	top := y
	x0 := x + PopoverPadding
	cy := top + PopoverPadding
	b.Title = image.Pt(x0, cy)
	cy += PopoverTitleHeight

	if o.ShowTabs {
		b.Tabs = make([]image.Rectangle, 2)
		for i := range b.Tabs {
			tx := x0 + i*(TabW+TabGap)
			b.Tabs[i] = image.Rect(tx, cy, tx+TabW, cy+TabH)
		}
		cy += TabH + SectionGap
	}

	if o.ShowSwatches && o.Swatches > 0 {
		b.Swatches = make([]image.Rectangle, o.Swatches)
		for i := range b.Swatches {
			col, row := i%SwatchColumns, i/SwatchColumns
			sx := x0 + col*(SwatchSize+SwatchGap)
			sy := cy + row*(SwatchSize+SwatchGap)
			b.Swatches[i] = image.Rect(sx, sy, sx+SwatchSize, sy+SwatchSize)
		}
		rows := (o.Swatches + SwatchColumns - 1) / SwatchColumns
		cy += rows*(SwatchSize+SwatchGap) - SwatchGap + SectionGap
	}

	if o.ShowCustom {
		b.Surface = image.Rect(x0, cy, x0+InnerW, cy+SurfaceH)
		cy += SurfaceH + SectionGap

		hueW := InnerW - PreviewSize - SectionGap
		b.Hue = image.Rect(x0, cy+(PreviewSize-HueH)/2, x0+hueW, cy+(PreviewSize+HueH)/2)
		b.Preview = image.Rect(x0+InnerW-PreviewSize, cy, x0+InnerW, cy+PreviewSize)
		cy += PreviewSize + SectionGap

		b.Hex = image.Rect(x0, cy, x0+HexInputW, cy+InputH)
		cx := x0 + HexInputW + SectionGap
		for i := range b.Channels {
			b.Channels[i] = image.Rect(cx, cy, cx+ChannelInputW, cy+InputH)
			cx += ChannelInputW + ChannelGap
		}
		cy += InputH + SectionGap
	}

	if o.ShowFooter {
		right := x0 + InnerW
		b.Done = image.Rect(right-ButtonW, cy, right, cy+ButtonH)
		b.Cancel = image.Rect(right-2*ButtonW-SectionGap, cy, right-ButtonW-SectionGap, cy+ButtonH)
		cy += ButtonH + SectionGap
	}

	b.Popover = image.Rect(x, top, x+PopoverW, cy-SectionGap+PopoverPadding)
	return b
}

// Target is the picker part under the pointer.
type Target int

const (
	TargetNone Target = iota
	TargetSummaryButton
	TargetSummaryInput
	TargetPopover
	TargetTab
	TargetSwatch
	TargetSurface
	TargetHue
	TargetHex
	TargetChannel
	TargetCancel
	TargetDone
)

// Hit is the result of a hit test. Index is the tab, swatch or channel
// number where it applies.
type Hit struct {
	Target Target
	Index  int
}

// HitTest finds the part of the picker under p.
func (b Bounds) HitTest(p image.Point) Hit {
	switch {
	case p.In(b.SummaryButton):
		return Hit{Target: TargetSummaryButton}
	case p.In(b.SummaryInput):
		return Hit{Target: TargetSummaryInput}
	}
	if !p.In(b.Popover) {
		return Hit{Target: TargetNone}
	}
	for i, r := range b.Tabs {
		if p.In(r) {
			return Hit{Target: TargetTab, Index: i}
		}
	}
	for i, r := range b.Swatches {
		if p.In(r) {
			return Hit{Target: TargetSwatch, Index: i}
		}
	}
	switch {
	case p.In(b.Surface):
		return Hit{Target: TargetSurface}
	case p.In(b.Hue):
		return Hit{Target: TargetHue}
	case p.In(b.Hex):
		return Hit{Target: TargetHex}
	case p.In(b.Cancel):
		return Hit{Target: TargetCancel}
	case p.In(b.Done):
		return Hit{Target: TargetDone}
	}
	for i, r := range b.Channels {
		if p.In(r) {
			return Hit{Target: TargetChannel, Index: i}
		}
	}
	return Hit{Target: TargetPopover}
}

// Drag tracks which slider a held button is dragging. Only the surface and
// the hue strip can be dragged.
type Drag struct {
	target Target
}

// Start begins a drag on t. Other targets end any drag in progress.
func (d *Drag) Start(t Target) {
	if t != TargetSurface && t != TargetHue {
		t = TargetNone
	}
	d.target = t
}

// Stop ends the drag.
func (d *Drag) Stop() { d.target = TargetNone }

// Follow returns the dragged target for this frame. A closed popover ends
// the drag, so a button still held after Escape or Done edits nothing.
func (d *Drag) Follow(open bool) Target {
	if !open {
		d.Stop()
	}
	return d.target
}

// SurfaceFraction converts p to fractions of the saturation/brightness
// surface, clamped to [0,1]. y is measured from the top.
func (b Bounds) SurfaceFraction(p image.Point) (float64, float64) {
	return fraction(p.X, b.Surface.Min.X, b.Surface.Dx()), fraction(p.Y, b.Surface.Min.Y, b.Surface.Dy())
}

// SurfacePoint is the inverse of SurfaceFraction.
func (b Bounds) SurfacePoint(fx, fy float64) image.Point {
	return image.Pt(
		b.Surface.Min.X+int(math.Round(fx*float64(b.Surface.Dx()-1))),
		b.Surface.Min.Y+int(math.Round(fy*float64(b.Surface.Dy()-1))),
	)
}

// HueAt converts p to a hue slider value in [0,360].
func (b Bounds) HueAt(p image.Point) int {
	return int(math.Round(fraction(p.X, b.Hue.Min.X, b.Hue.Dx()) * 360))
}

// HueX is the x coordinate of the slider thumb for hue h.
func (b Bounds) HueX(h int) int {
	return b.Hue.Min.X + int(math.Round(float64(h)/360*float64(b.Hue.Dx()-1)))
}

func fraction(v, min, size int) float64 {
	if size <= 1 {
		return 0
	}
	f := float64(v-min) / float64(size-1)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
