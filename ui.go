package main

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// UI owns the font face, the HUD and the click log.
type UI struct {
	face     font.Face
	clickLog []string
}

// NewUI loads the TTF at fontPath, falling back to the built-in face.
func NewUI(fontPath string, logger *zap.Logger) *UI {
	ui := &UI{face: basicfont.Face7x13}
	if fontPath == "" {
		return ui
	}

	b, err := os.ReadFile(fontPath)
	if err != nil {
		logger.Warn("could not read font file; falling back to basic font", zap.String("path", fontPath), zap.Error(err))
		return ui
	}
	tt, err := opentype.Parse(b)
	if err != nil {
		logger.Warn("could not parse ttf; falling back to basic font", zap.String("path", fontPath), zap.Error(err))
		return ui
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 13, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Warn("could not create font face; falling back to basic font", zap.String("path", fontPath), zap.Error(err))
		return ui
	}
	ui.face = face
	return ui
}

// addClickLog records a short message shown in the corner of the window.
func (ui *UI) addClickLog(msg string) {
	ui.clickLog = append(ui.clickLog, msg)
	if len(ui.clickLog) > ClickLogSize {
		ui.clickLog = ui.clickLog[len(ui.clickLog)-ClickLogSize:]
	}
}

// Draw renders the HUD: hints, the live announcement and the click log.
func (ui *UI) Draw(screen *ebiten.Image, g *Game) {
	screenW := screen.Bounds().Dx()
	screenH := screen.Bounds().Dy()
	v := g.picker.View()

	y := screenH - 3*HUDLineH - 6
	drawTextAt(screen, ui.face, fmt.Sprintf("%s picker - palette %s - committed %s", v.Mode, g.palette.Name, v.Committed.Hex()), 8, y, ColorTextDim)
	y += HUDLineH
	if v.ShowCustom {
		drawTextAt(screen, ui.face, v.Announcement, 8, y, ColorText)
	} else {
		drawTextAt(screen, ui.face, "Enter to open - Esc to cancel - Right-click for menu", 8, y, ColorTextDim)
	}
	y += HUDLineH
	drawTextAt(screen, ui.face, "Arrows move the surface thumb (Shift: large step) - Ctrl+Tab switches tabs", 8, y, ColorTextDim)

	if len(ui.clickLog) == 0 {
		return
	}
	logW := 200
	logH := len(ui.clickLog)*HUDLineH + 2*InnerPadding
	lx := screenW - logW - 8
	ebitenutil.DrawRect(screen, float64(lx), 8, float64(logW), float64(logH), ColorLogBg)
	for i, msg := range ui.clickLog {
		drawTextAt(screen, ui.face, msg, lx+InnerPadding, 8+InnerPadding+i*HUDLineH, ColorTextDim)
	}
}

// drawTextAt draws text using the provided face. If face is nil, falls back to ebitenutil.DebugPrintAt.
func drawTextAt(screen *ebiten.Image, face font.Face, s string, x, y int, col color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	// text.Draw expects y to be baseline; DebugPrintAt uses top-left.
	ascent := face.Metrics().Ascent.Round()
	text.Draw(screen, s, face, x, y+ascent, col)
}

// textWidth is the advance of s in face, in pixels.
func textWidth(face font.Face, s string) int {
	if face == nil {
		return 6 * len(s)
	}
	return font.MeasureString(face, s).Ceil()
}
