// Package ui paints the fixed-size UI chrome: dialogue box, health bars,
// menu panel and battle command box.
package ui

import (
	"image"
	"image/color"

	"github.com/1siamBot/gospel-assets/engine/palette"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Element is one named UI image.
type Element struct {
	Name string
	Draw func() *pixel.Canvas
}

// Elements lists every UI image in generation order.
var Elements = []Element{
	{"ui_textbox", TextBox},
	{"ui_healthbar_green", func() *pixel.Canvas { return HealthBar(palette.HealthGood, palette.HealthLit) }},
	{"ui_healthbar_red", func() *pixel.Canvas { return HealthBar(palette.HealthLow, palette.HealthHot) }},
	{"ui_menu_panel", MenuPanel},
	{"ui_battle_commands", CommandBox},
}

// Health bar dimensions.
const (
	BarWidth  = 64
	BarHeight = 8
)

// TextBox is the 320x80 dialogue frame.
func TextBox() *pixel.Canvas {
	return genPanel(320, 80, true)
}

// MenuPanel is the 200x160 pause-menu frame.
func MenuPanel() *pixel.Canvas {
	return genPanel(200, 160, true)
}

// CommandBox is the 160x80 battle command frame with its selection cursor.
func CommandBox() *pixel.Canvas {
	c := genPanel(160, 80, false)
	c.Polygon([]image.Point{{8, 12}, {14, 16}, {8, 20}}, palette.Cursor)
	return c
}

// HealthBar draws a framed bar filled with fill; the upper half of the fill
// is replaced by highlight for a glossy look.
func HealthBar(fill, highlight color.NRGBA) *pixel.Canvas {
	c := pixel.NewTransparent(BarWidth, BarHeight)
	c.Rect(0, 0, BarWidth-1, BarHeight-1, palette.BarTrough)
	c.Border(0, 0, BarWidth-1, BarHeight-1, palette.BarFrame)
	c.Rect(2, 2, BarWidth-3, BarHeight-3, fill)
	c.Rect(2, 2, BarWidth-3, 3, highlight)
	return c
}

// genPanel draws the shared dark panel with a double gold border and,
// optionally, 4x4 light-gold corner accents.
func genPanel(w, h int, corners bool) *pixel.Canvas {
	c := pixel.NewTransparent(w, h)
	c.Rect(0, 0, w-1, h-1, palette.PanelFill)
	c.Border(0, 0, w-1, h-1, palette.Gold)
	c.Border(2, 2, w-3, h-3, palette.Gold)
	if !corners {
		return c
	}
	for _, p := range []image.Point{{0, 0}, {w - 4, 0}, {0, h - 4}, {w - 4, h - 4}} {
		c.Rect(p.X, p.Y, p.X+3, p.Y+3, palette.GoldLight)
	}
	return c
}
