package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

// MenuAction describes what action was selected in the context menu
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionCopyHex
	MenuActionPasteHex
	MenuActionLoadPalette
	MenuActionExportPalette
	MenuActionReset
)

var menuItems = []struct {
	label  string
	action MenuAction
}{
	{"Copy Hex", MenuActionCopyHex},
	{"Paste Hex", MenuActionPasteHex},
	{"Load Palette...", MenuActionLoadPalette},
	{"Export Palette...", MenuActionExportPalette},
	{"Reset to Default", MenuActionReset},
}

// ContextMenu is the right-click menu. It provides methods to show/hide,
// update based on input, and draw itself.
type ContextMenu struct {
	visible  bool
	x, y     int
	selected int
}

func NewContextMenu() *ContextMenu {
	return &ContextMenu{selected: -1}
}

func (cm *ContextMenu) Visible() bool { return cm.visible }

func (cm *ContextMenu) Show(x, y int) {
	cm.visible = true
	cm.x = x
	cm.y = y
	cm.selected = -1
}

func (cm *ContextMenu) Hide() {
	cm.visible = false
	cm.selected = -1
}

// Update returns the MenuAction for a click on an item. Any click or
// Escape hides the menu.
func (cm *ContextMenu) Update() MenuAction {
	if !cm.visible {
		return MenuActionNone
	}

	mx, my := ebiten.CursorPosition()
	if mx >= cm.x && mx <= cm.x+MenuW && my >= cm.y && my < cm.y+MenuItemH*len(menuItems) {
		cm.selected = (my - cm.y) / MenuItemH
	} else {
		cm.selected = -1
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		action := MenuActionNone
		if cm.selected >= 0 {
			action = menuItems[cm.selected].action
		}
		cm.Hide()
		return action
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		cm.Hide()
	}
	return MenuActionNone
}

func (cm *ContextMenu) Draw(screen *ebiten.Image, face font.Face) {
	if !cm.visible {
		return
	}
	bgX := float64(cm.x - MenuPaddingX)
	bgY := float64(cm.y - MenuPaddingY)
	bgW := float64(MenuW + MenuPaddingX*2)
	bgH := float64(MenuItemH*len(menuItems) + MenuPaddingY*2)
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, bgH, ColorMenuBg)
	// border
	ebitenutil.DrawRect(screen, bgX, bgY, bgW, BorderWidth, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY+bgH-BorderWidth, bgW, BorderWidth, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX, bgY, BorderWidth, bgH, ColorMenuBorder)
	ebitenutil.DrawRect(screen, bgX+bgW-BorderWidth, bgY, BorderWidth, bgH, ColorMenuBorder)

	for i, it := range menuItems {
		iy := cm.y + i*MenuItemH
		if cm.selected == i {
			ebitenutil.DrawRect(screen, float64(cm.x), float64(iy), float64(MenuW), float64(MenuItemH), ColorMenuHighlight)
		}
		drawTextAt(screen, face, it.label, cm.x+InnerPadding+2, iy+InnerPadding, ColorText)
	}
}
