package main

import (
	"errors"
	"image"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/example/swatchpicker/internal/layout"
	"github.com/example/swatchpicker/internal/store"
	"github.com/example/swatchpicker/internal/textfield"
	"github.com/example/swatchpicker/picker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"
)

// focusKind is the control receiving keyboard input.
type focusKind int

const (
	focusNone focusKind = iota
	focusSummary
	focusSurface
	focusHue
	focusHex
	focusRed
	focusGreen
	focusBlue
)

// customFocusOrder is the Tab order inside the custom editor.
var customFocusOrder = []focusKind{focusSurface, focusHue, focusHex, focusRed, focusGreen, focusBlue}

const (
	keyRepeatDelay    = 24
	keyRepeatInterval = 3
)

// InputManager handles input detection and drives the picker controller.
// It owns transient input state: focus, drag tracking and the draft text of
// the focused input. Everything it shows otherwise is a projection of the
// controller's state.
type InputManager struct {
	focus focusKind
	// draft of the focused text input, nil when focus is not on one
	field *textfield.Field

	drag layout.Drag

	rightPressedX int
	rightPressedY int
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// HandleContextMenuInput opens the menu on a right click and runs the
// chosen action. It reports whether the menu consumed this frame's input.
func (im *InputManager) HandleContextMenuInput(g *Game) bool {
	if g.contextMenu.Visible() {
		im.runMenuAction(g, g.contextMenu.Update())
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		im.rightPressedX, im.rightPressedY = ebiten.CursorPosition()
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		mx, my := ebiten.CursorPosition()
		// small movement -> treat as click and open context menu
		if abs(mx-im.rightPressedX) < ClickThreshPx && abs(my-im.rightPressedY) < ClickThreshPx {
			im.blur(g)
			g.contextMenu.Show(mx, my)
			return true
		}
	}
	return false
}

func (im *InputManager) runMenuAction(g *Game, action MenuAction) {
	switch action {
	case MenuActionNone:
		// nothing to do
	case MenuActionCopyHex:
		hex := g.picker.Committed().Hex()
		if g.picker.View().ShowCustom {
			hex = g.picker.Pending().Hex()
		}
		if err := clipboard.WriteAll(hex); err != nil {
			g.logger.Warn("clipboard write failed", zap.Error(err))
			g.ui.addClickLog("copy failed")
			break
		}
		g.ui.addClickLog("copied " + hex)
	case MenuActionPasteHex:
		text, err := clipboard.ReadAll()
		if err != nil {
			g.logger.Warn("clipboard read failed", zap.Error(err))
			g.ui.addClickLog("paste failed")
			break
		}
		g.pasteHex(text)
	case MenuActionLoadPalette:
		path, err := dialog.File().Filter("YAML palette", "yaml", "yml").Title("Load Palette").Load()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				g.logger.Error("file open failed", zap.Error(err))
			}
			break
		}
		if path == "" {
			break
		}
		absPath, _ := filepath.Abs(path)
		if err := g.loadPaletteFile(absPath); err != nil {
			g.logger.Error("load palette failed", zap.String("path", absPath), zap.Error(err))
			g.ui.addClickLog("failed to load: " + filepath.Base(absPath))
			break
		}
		g.ui.addClickLog("loaded: " + g.palette.Name)
	case MenuActionExportPalette:
		path, err := dialog.File().Filter("YAML palette", "yaml", "yml").Title("Export Palette As").Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				g.logger.Error("file save failed", zap.Error(err))
			}
			break
		}
		if path == "" {
			break
		}
		absPath, _ := filepath.Abs(path)
		if err := store.SavePalette(absPath, g.palette); err != nil {
			g.logger.Error("export palette failed", zap.String("path", absPath), zap.Error(err))
			g.ui.addClickLog("failed to save: " + filepath.Base(absPath))
			break
		}
		g.ui.addClickLog("saved: " + filepath.Base(absPath))
	case MenuActionReset:
		if err := g.rebuild(true); err != nil {
			g.logger.Error("reset failed", zap.Error(err))
			break
		}
		g.ui.addClickLog("reset to " + g.picker.Committed().Hex())
	}
}

// HandlePointer routes left clicks and drags to the picker part under the
// cursor.
func (im *InputManager) HandlePointer(g *Game) {
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx, my)
	b := g.bounds()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		im.handlePress(g, b, p)
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		switch im.drag.Follow(g.picker.IsOpen()) {
		case layout.TargetSurface:
			x, y := b.SurfaceFraction(p)
			g.edit(picker.GestureMove{X: x, Y: y})
		case layout.TargetHue:
			g.edit(picker.HueEdit{Hue: b.HueAt(p)})
		}
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		im.drag.Stop()
	}
}

func (im *InputManager) handlePress(g *Game, b layout.Bounds, p image.Point) {
	hit := b.HitTest(p)
	switch hit.Target {
	case layout.TargetNone:
		// click outside dismisses the popover
		im.blur(g)
		if g.picker.IsOpen() {
			g.picker.Cancel()
		}
	case layout.TargetSummaryButton:
		im.blur(g)
		g.picker.Toggle()
	case layout.TargetSummaryInput:
		if g.picker.IsOpen() {
			im.discard()
			g.picker.Cancel()
		}
		im.setFocus(g, focusSummary)
	case layout.TargetPopover:
		im.blur(g)
	case layout.TargetTab:
		im.blur(g)
		tabs := picker.Tabs()
		if hit.Index < len(tabs) {
			g.reject(g.picker.SwitchTab(tabs[hit.Index]))
		}
	case layout.TargetSwatch:
		im.blur(g)
		g.reject(g.picker.SelectSwatch(hit.Index))
	case layout.TargetSurface:
		im.setFocus(g, focusSurface)
		im.drag.Start(layout.TargetSurface)
		x, y := b.SurfaceFraction(p)
		g.edit(picker.GestureMove{X: x, Y: y})
	case layout.TargetHue:
		im.setFocus(g, focusHue)
		im.drag.Start(layout.TargetHue)
		g.edit(picker.HueEdit{Hue: b.HueAt(p)})
	case layout.TargetHex:
		im.setFocus(g, focusHex)
	case layout.TargetChannel:
		im.setFocus(g, focusRed+focusKind(hit.Index))
	case layout.TargetCancel:
		im.discard()
		g.picker.Cancel()
	case layout.TargetDone:
		im.blur(g)
		g.reject(g.picker.Commit())
	}
}

// HandleKeyboard routes keys to the focused input, the surface or the hue
// slider, and handles the picker-wide shortcuts.
func (im *InputManager) HandleKeyboard(g *Game) {
	if im.field != nil {
		im.handleFieldKeys(g)
		return
	}

	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	v := g.picker.View()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if v.Open {
			g.picker.Cancel()
		}
		im.focus = focusNone
		return
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyTab):
		next := picker.TabPredefined
		if v.Tab == picker.TabPredefined {
			next = picker.TabCustom
		}
		g.reject(g.picker.SwitchTab(next))
		im.focus = focusNone
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if v.ShowCustom {
			im.cycleFocus(g, shift)
		}
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		switch {
		case !v.Open:
			g.picker.Open()
		case v.CanCommit && inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			g.reject(g.picker.Commit())
		}
		return
	}

	if !v.ShowCustom {
		return
	}
	switch im.focus {
	case focusHue:
		step := 1
		if shift {
			step = 10
		}
		h := v.Fields.Hue
		if repeatingKeyPressed(ebiten.KeyArrowLeft) || repeatingKeyPressed(ebiten.KeyArrowDown) {
			g.edit(picker.HueEdit{Hue: h - step})
		}
		if repeatingKeyPressed(ebiten.KeyArrowRight) || repeatingKeyPressed(ebiten.KeyArrowUp) {
			g.edit(picker.HueEdit{Hue: h + step})
		}
	default:
		dx, dy := 0, 0
		if repeatingKeyPressed(ebiten.KeyArrowLeft) {
			dx--
		}
		if repeatingKeyPressed(ebiten.KeyArrowRight) {
			dx++
		}
		if repeatingKeyPressed(ebiten.KeyArrowUp) {
			dy++
		}
		if repeatingKeyPressed(ebiten.KeyArrowDown) {
			dy--
		}
		if dx != 0 || dy != 0 {
			im.focus = focusSurface
			g.edit(picker.GestureStep{DX: dx, DY: dy, Large: shift})
		}
	}
}

func (im *InputManager) handleFieldKeys(g *Game) {
	f := im.field
	f.Insert(ebiten.AppendInputChars(nil)...)

	switch {
	case repeatingKeyPressed(ebiten.KeyBackspace):
		f.Backspace()
	case repeatingKeyPressed(ebiten.KeyDelete):
		f.Delete()
	case repeatingKeyPressed(ebiten.KeyArrowLeft):
		f.Left()
	case repeatingKeyPressed(ebiten.KeyArrowRight):
		f.Right()
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		f.Home()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		f.End()
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		im.applyDraft(g)
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		// first Escape reverts the draft and leaves the field
		im.discard()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if im.focus == focusSummary {
			im.blur(g)
			return
		}
		im.cycleFocus(g, ebiten.IsKeyPressed(ebiten.KeyShift))
	}
	if im.field != nil {
		im.field.Tick()
	}
}

// setFocus moves keyboard focus to f, applying any draft of the field that
// loses it.
func (im *InputManager) setFocus(g *Game, f focusKind) {
	if im.focus == f && (im.field != nil || !f.isText()) {
		return
	}
	im.blur(g)
	im.focus = f
	if f.isText() {
		im.field = textfield.New(im.projection(g, f), f.maxLen(), f.filter())
	}
	g.logger.Debug("focus moved", zap.String("id", im.focusID(g.picker.View().IDs)))
}

// blur applies the focused draft and clears focus.
func (im *InputManager) blur(g *Game) {
	if im.field != nil {
		im.applyDraft(g)
	}
	im.field = nil
	im.focus = focusNone
}

// discard drops the focused draft without applying it.
func (im *InputManager) discard() {
	im.field = nil
	im.focus = focusNone
}

// applyDraft sends the draft to the controller. The field then shows the
// projection again: the new value on success, the old one after a
// rejected edit.
func (im *InputManager) applyDraft(g *Game) {
	if im.field == nil {
		return
	}
	text := im.field.Text()
	var err error
	switch im.focus {
	case focusSummary:
		err = g.picker.EditSummary(text)
	case focusHex:
		err = g.picker.EditCustom(picker.HexEdit{Text: text})
	case focusRed, focusGreen, focusBlue:
		err = g.picker.EditCustom(picker.ChannelEdit{Channel: im.focus.channel(), Text: text})
	}
	if err != nil {
		g.ui.addClickLog("rejected " + text)
	}
	im.field.SetText(im.projection(g, im.focus))
}

func (im *InputManager) cycleFocus(g *Game, backwards bool) {
	idx := -1
	for i, f := range customFocusOrder {
		if f == im.focus {
			idx = i
		}
	}
	n := len(customFocusOrder)
	if backwards {
		idx = (idx - 1 + n) % n
	} else {
		idx = (idx + 1) % n
	}
	im.setFocus(g, customFocusOrder[idx])
}

func (im *InputManager) projection(g *Game, f focusKind) string {
	v := g.picker.View()
	switch f {
	case focusSummary:
		return v.Committed.Hex()
	case focusHex:
		return v.Fields.Hex
	case focusRed:
		return v.Fields.Red
	case focusGreen:
		return v.Fields.Green
	case focusBlue:
		return v.Fields.Blue
	}
	return ""
}

func (im *InputManager) focusID(ids picker.IDs) string {
	switch im.focus {
	case focusSummary:
		return ids.SummaryInput
	case focusSurface:
		return ids.Popover
	case focusHue:
		return ids.HueInput
	case focusHex:
		return ids.HexInput
	case focusRed, focusGreen, focusBlue:
		return ids.ChannelInput(im.focus.channel())
	}
	return ""
}

// displayText is the text an input shows: the draft while it has focus,
// the projection otherwise.
func (im *InputManager) displayText(t layout.Target, index int, projection string) string {
	if im.field != nil && im.focus.target() == (layout.Hit{Target: t, Index: index}) {
		return im.field.Text()
	}
	return projection
}

// Draw renders the focus ring and the caret of the focused input.
func (im *InputManager) Draw(screen *ebiten.Image, g *Game) {
	b := g.bounds()
	rect, label := im.focusRect(b)
	if rect.Empty() {
		return
	}
	strokeRect(screen, rect.Inset(-BorderWidth), BorderWidth, ColorFocus)

	if im.field == nil || !im.field.CaretVisible() {
		return
	}
	origin := g.renderer.inputTextOrigin(rect, label)
	cx := origin.X + textWidth(g.ui.face, im.field.BeforeCaret())
	fillRect(screen, image.Rect(cx, rect.Min.Y+4, cx+1, rect.Max.Y-4), ColorText)
}

func (im *InputManager) focusRect(b layout.Bounds) (image.Rectangle, string) {
	switch im.focus {
	case focusSummary:
		return b.SummaryInput, ""
	case focusSurface:
		return b.Surface, ""
	case focusHue:
		return b.Hue, ""
	case focusHex:
		return b.Hex, ""
	case focusRed:
		return b.Channels[0], "R"
	case focusGreen:
		return b.Channels[1], "G"
	case focusBlue:
		return b.Channels[2], "B"
	}
	return image.Rectangle{}, ""
}

func (f focusKind) isText() bool {
	switch f {
	case focusSummary, focusHex, focusRed, focusGreen, focusBlue:
		return true
	}
	return false
}

func (f focusKind) channel() picker.Channel {
	return picker.Channel(f - focusRed)
}

func (f focusKind) target() layout.Hit {
	switch f {
	case focusSummary:
		return layout.Hit{Target: layout.TargetSummaryInput}
	case focusHex:
		return layout.Hit{Target: layout.TargetHex}
	case focusRed, focusGreen, focusBlue:
		return layout.Hit{Target: layout.TargetChannel, Index: int(f - focusRed)}
	}
	return layout.Hit{Target: layout.TargetNone}
}

func (f focusKind) maxLen() int {
	if f == focusSummary || f == focusHex {
		return 7
	}
	return 4
}

func (f focusKind) filter() textfield.Filter {
	if f == focusSummary || f == focusHex {
		return textfield.HexFilter
	}
	return textfield.DigitFilter
}

// repeatingKeyPressed reports a press on the first frame and then at a
// fixed interval while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
