package main

import (
	"image"
	"image/color"

	"github.com/example/swatchpicker/internal/layout"
	"github.com/example/swatchpicker/picker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
)

// Renderer handles all drawing of the picker.
type Renderer struct {
	face font.Face

	// saturation/brightness surface, rebuilt when the hue changes
	surface    *ebiten.Image
	surfaceHue float64

	hueStrip *ebiten.Image
}

// NewRenderer creates a new Renderer instance.
func NewRenderer(face font.Face) *Renderer {
	return &Renderer{face: face, surfaceHue: -1}
}

// Draw renders one frame of the picker described by v at bounds b.
func (r *Renderer) Draw(screen *ebiten.Image, v picker.View, b layout.Bounds, im *InputManager) {
	if v.ShowSummary {
		r.drawSummary(screen, v, b, im)
	}
	if !v.Open {
		return
	}
	r.drawPopover(screen, v, b)
	if v.ShowTabs {
		r.drawTabs(screen, v, b)
	}
	if v.ShowSwatches {
		r.drawSwatches(screen, v, b)
	}
	if v.ShowCustom {
		r.drawCustom(screen, v, b, im)
	}
	if v.ShowFooter {
		r.drawFooter(screen, v, b)
	}
}

func (r *Renderer) drawSummary(screen *ebiten.Image, v picker.View, b layout.Bounds, im *InputManager) {
	drawTextAt(screen, r.face, "Color", b.SummaryLabel.Min.X, b.SummaryLabel.Min.Y+InnerPadding, ColorText)

	fillRect(screen, b.SummaryButton, v.Committed.RGBA())
	strokeRect(screen, b.SummaryButton, BorderWidth, ColorPopoverBorder)

	r.drawInput(screen, b.SummaryInput, "", im.displayText(layout.TargetSummaryInput, 0, v.Committed.Hex()))
}

func (r *Renderer) drawPopover(screen *ebiten.Image, v picker.View, b layout.Bounds) {
	fillRect(screen, b.Popover, ColorPopoverBg)
	strokeRect(screen, b.Popover, BorderWidth, ColorPopoverBorder)

	title := "Select a color"
	switch v.Mode {
	case picker.ModeCustomOnly:
		title = "Custom color"
	case picker.ModePredefinedOnly, picker.ModeSwatchesOnly:
		title = "Default colors"
	}
	drawTextAt(screen, r.face, title, b.Title.X, b.Title.Y, ColorText)
}

func (r *Renderer) drawTabs(screen *ebiten.Image, v picker.View, b layout.Bounds) {
	for i, t := range picker.Tabs() {
		if i >= len(b.Tabs) {
			break
		}
		bg := ColorTabBg
		if t == v.Tab {
			bg = ColorTabActive
		}
		fillRect(screen, b.Tabs[i], bg)
		label := t.String()
		tx := b.Tabs[i].Min.X + (b.Tabs[i].Dx()-textWidth(r.face, label))/2
		drawTextAt(screen, r.face, label, tx, b.Tabs[i].Min.Y+InnerPadding, ColorText)
	}
}

func (r *Renderer) drawSwatches(screen *ebiten.Image, v picker.View, b layout.Bounds) {
	for _, s := range v.Swatches {
		if s.Index >= len(b.Swatches) {
			break
		}
		rect := b.Swatches[s.Index]
		fillRect(screen, rect, s.Color.RGBA())
		if s.Selected {
			strokeRect(screen, rect.Inset(-BorderWidth), BorderWidth, ColorSwatchRing)
		}
	}
}

func (r *Renderer) drawCustom(screen *ebiten.Image, v picker.View, b layout.Bounds, im *InputManager) {
	hue, _, _ := v.Pending.HSLFloat()
	r.ensureSurface(hue, b.Surface)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Surface.Min.X), float64(b.Surface.Min.Y))
	screen.DrawImage(r.surface, op)

	thumb := b.SurfacePoint(v.Fields.X, v.Fields.Y)
	tr := image.Rect(thumb.X-ThumbSize/2, thumb.Y-ThumbSize/2, thumb.X+ThumbSize/2, thumb.Y+ThumbSize/2)
	strokeRect(screen, tr.Inset(-1), 1, ColorThumbShadow)
	strokeRect(screen, tr, BorderWidth, ColorThumb)

	r.ensureHueStrip(b.Hue)
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(b.Hue.Min.X), float64(b.Hue.Min.Y))
	screen.DrawImage(r.hueStrip, op)
	hx := b.HueX(v.Fields.Hue)
	hr := image.Rect(hx-HueThumbW/2, b.Hue.Min.Y-2, hx+HueThumbW/2, b.Hue.Max.Y+2)
	fillRect(screen, hr, ColorThumb)
	strokeRect(screen, hr.Inset(-1), 1, ColorThumbShadow)

	fillRect(screen, b.Preview, v.Pending.RGBA())
	strokeRect(screen, b.Preview, 1, ColorPopoverBorder)

	r.drawInput(screen, b.Hex, "", im.displayText(layout.TargetHex, 0, v.Fields.Hex))
	projections := [3]string{v.Fields.Red, v.Fields.Green, v.Fields.Blue}
	labels := [3]string{"R", "G", "B"}
	for i := range b.Channels {
		r.drawInput(screen, b.Channels[i], labels[i], im.displayText(layout.TargetChannel, i, projections[i]))
	}
}

func (r *Renderer) drawFooter(screen *ebiten.Image, v picker.View, b layout.Bounds) {
	r.drawButton(screen, b.Cancel, "Cancel", ColorButtonBg, ColorText)
	if v.CanCommit {
		r.drawButton(screen, b.Done, "Done", ColorButtonPrimary, ColorText)
	} else {
		r.drawButton(screen, b.Done, "Done", ColorButtonOff, ColorTextDim)
	}
}

func (r *Renderer) drawButton(screen *ebiten.Image, rect image.Rectangle, label string, bg, fg color.Color) {
	fillRect(screen, rect, bg)
	tx := rect.Min.X + (rect.Dx()-textWidth(r.face, label))/2
	drawTextAt(screen, r.face, label, tx, rect.Min.Y+InnerPadding, fg)
}

// drawInput draws a text box with an optional dim label before the value.
func (r *Renderer) drawInput(screen *ebiten.Image, rect image.Rectangle, label, value string) {
	fillRect(screen, rect, ColorInputBg)
	strokeRect(screen, rect, 1, ColorPopoverBorder)
	x := rect.Min.X + InnerPadding
	if label != "" {
		drawTextAt(screen, r.face, label, x, rect.Min.Y+InnerPadding, ColorTextDim)
		x += textWidth(r.face, label) + 4
	}
	drawTextAt(screen, r.face, value, x, rect.Min.Y+InnerPadding, ColorText)
}

// inputTextOrigin is where drawInput starts the value text.
func (r *Renderer) inputTextOrigin(rect image.Rectangle, label string) image.Point {
	x := rect.Min.X + InnerPadding
	if label != "" {
		x += textWidth(r.face, label) + 4
	}
	return image.Pt(x, rect.Min.Y+InnerPadding)
}

func (r *Renderer) ensureSurface(hue float64, rect image.Rectangle) {
	w, h := rect.Dx(), rect.Dy()
	if r.surface != nil && r.surfaceHue == hue && r.surface.Bounds().Dx() == w && r.surface.Bounds().Dy() == h {
		return
	}
	if r.surface == nil || r.surface.Bounds().Dx() != w || r.surface.Bounds().Dy() != h {
		r.surface = ebiten.NewImage(w, h)
	}
	pix := make([]byte, 4*w*h)
	for y := 0; y < h; y++ {
		val := 1 - float64(y)/float64(h-1)
		for x := 0; x < w; x++ {
			sat := float64(x) / float64(w-1)
			putPixel(pix, 4*(y*w+x), colorful.Hsv(hue, sat, val))
		}
	}
	r.surface.WritePixels(pix)
	r.surfaceHue = hue
}

func (r *Renderer) ensureHueStrip(rect image.Rectangle) {
	w, h := rect.Dx(), rect.Dy()
	if r.hueStrip != nil && r.hueStrip.Bounds().Dx() == w && r.hueStrip.Bounds().Dy() == h {
		return
	}
	r.hueStrip = ebiten.NewImage(w, h)
	pix := make([]byte, 4*w*h)
	for x := 0; x < w; x++ {
		c := colorful.Hsv(360*float64(x)/float64(w-1), 1, 1)
		for y := 0; y < h; y++ {
			putPixel(pix, 4*(y*w+x), c)
		}
	}
	r.hueStrip.WritePixels(pix)
}

func putPixel(pix []byte, i int, c colorful.Color) {
	pix[i], pix[i+1], pix[i+2] = c.Clamped().RGB255()
	pix[i+3] = 0xff
}

func fillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	ebitenutil.DrawRect(screen, float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()), c)
}

// strokeRect draws a border of width w just inside r.
func strokeRect(screen *ebiten.Image, r image.Rectangle, w int, c color.Color) {
	x, y := float64(r.Min.X), float64(r.Min.Y)
	rw, rh, bw := float64(r.Dx()), float64(r.Dy()), float64(w)
	ebitenutil.DrawRect(screen, x, y, rw, bw, c)
	ebitenutil.DrawRect(screen, x, y+rh-bw, rw, bw, c)
	ebitenutil.DrawRect(screen, x, y, bw, rh, c)
	ebitenutil.DrawRect(screen, x+rw-bw, y, bw, rh, c)
}
