package main

import "image/color"

// Color Palette
var (
	ColorBackground    = color.RGBA{0x12, 0x12, 0x14, 0xff} // Main window background
	ColorPopoverBg     = color.RGBA{0x22, 0x22, 0x2a, 0xff} // Popover body background
	ColorPopoverBorder = color.RGBA{0x44, 0x44, 0x50, 0xff} // Popover border
	ColorInputBg       = color.RGBA{0x18, 0x18, 0x1c, 0xff} // Text input background
	ColorTabBg         = color.RGBA{0x11, 0x11, 0x16, 0xff} // Inactive tab background
	ColorTabActive     = color.RGBA{0x33, 0x55, 0xff, 0xff} // Active tab background
	ColorFocus         = color.RGBA{0x66, 0x88, 0xff, 0xff} // Focus ring
	ColorSwatchRing    = color.White                        // Selected swatch ring
	ColorThumb         = color.White                        // Surface and hue thumbs
	ColorThumbShadow   = color.RGBA{0x00, 0x00, 0x00, 0xaa} // Thumb outline
	ColorButtonBg      = color.RGBA{0x2c, 0x2c, 0x36, 0xff} // Footer button background
	ColorButtonPrimary = color.RGBA{0x33, 0x55, 0xff, 0xff} // Done button background
	ColorButtonOff     = color.RGBA{0x1c, 0x1c, 0x22, 0xff} // Disabled button background
	ColorText          = color.White                        // Standard text
	ColorTextDim       = color.RGBA{0x99, 0x99, 0xa6, 0xff} // Labels and disabled text
	ColorLogBg         = color.RGBA{0x0c, 0x0c, 0x0e, 0xee} // Click log background
	ColorMenuBg        = color.RGBA{0x10, 0x10, 0x12, 0xff} // Context menu background
	ColorMenuBorder    = color.RGBA{0x44, 0x44, 0x50, 0xff} // Context menu border
	ColorMenuHighlight = color.RGBA{0x33, 0x55, 0xff, 0xff} // Context menu hover highlight
)

// Layout Constants
const (
	PickerOriginX = 24
	PickerOriginY = 24

	MenuPaddingX  = 4
	MenuPaddingY  = 4
	MenuItemH     = 28
	MenuW         = 240
	InnerPadding  = 6
	BorderWidth   = 2
	ThumbSize     = 10
	HueThumbW     = 4
	ClickThreshPx = 6

	// HUD
	HUDLineH     = 14
	ClickLogSize = 5
)
