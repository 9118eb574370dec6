// Package sprites paints the 32x32 front-facing character sprites.
package sprites

import (
	"image/color"

	"github.com/1siamBot/gospel-assets/engine/palette"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Size is the edge length of every character canvas.
const Size = 32

// DemonName is the one identity painted by its own routine instead of the
// shared humanoid template.
const DemonName = "enemy_demon"

// Character is one roster entry.
type Character struct {
	Name       string
	Robe       color.NRGBA
	Shadow     color.NRGBA
	Hair       color.NRGBA
	Decoration Decoration
}

// Roster lists every character in generation order.
var Roster = []Character{
	{"jesus", palette.WhiteRobe, palette.WhiteShadow, palette.HairBrown, Halo},
	{"peter", palette.BlueRobe, palette.BlueShadow, palette.HairBrown, Headband},
	{"andrew", palette.BlueRobe, palette.BlueShadow, palette.HairBlack, Headband},
	{"james", palette.GreenRobe, palette.GreenShadow, palette.HairBrown, None},
	{"john", palette.GreenRobe, palette.GreenShadow, palette.HairBlack, None},
	{"disciple", palette.Brown, palette.BrownDark, palette.HairBrown, None},
	{"enemy_soldier", palette.MetalGray, palette.MetalDark, palette.HairBlack, Helmet},
	{"enemy_pharisee", palette.Purple, palette.PurpleDark, palette.HairBlack, Phylactery},
	{DemonName, palette.DemonRed, palette.DemonDark, palette.HairBlack, Horns},
	{"npc_villager_m", palette.Brown, palette.BrownDark, palette.HairBrown, None},
	{"npc_villager_f", palette.TanRobe, palette.TanShadow, palette.HairBlack, Headscarf},
}

// Render paints ch. The demon bypasses the template entirely.
func Render(ch Character) *pixel.Canvas {
	if ch.Name == DemonName {
		return drawDemon()
	}
	return Build(ch.Robe, ch.Shadow, ch.Hair, ch.Decoration)
}

// Build paints the shared humanoid template and then applies deco, which may
// overwrite any pixel of the base.
func Build(robe, shadow, hair color.NRGBA, deco Decoration) *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)

	// Hair and head
	c.Rect(12, 4, 19, 6, hair)
	c.Rect(11, 7, 20, 7, hair)
	drawFace(c)
	c.Rect(11, 8, 11, 11, hair)
	c.Rect(20, 8, 20, 11, hair)

	c.Rect(14, 13, 17, 13, palette.Skin) // neck

	// Torso with shaded flanks
	c.Rect(10, 14, 21, 22, robe)
	c.Rect(10, 14, 12, 22, shadow)
	c.Rect(19, 14, 21, 22, shadow)

	// Arms and hands
	c.Rect(8, 15, 9, 21, robe)
	c.Rect(22, 15, 23, 21, robe)
	c.Rect(8, 22, 9, 23, palette.Skin)
	c.Rect(22, 22, 23, 23, palette.Skin)

	c.Rect(10, 20, 21, 20, shadow) // sash

	// Legs
	c.Rect(12, 23, 15, 27, robe)
	c.Rect(16, 23, 19, 27, shadow)

	// Sandals
	c.Rect(11, 28, 15, 29, palette.Sandal)
	c.Rect(16, 28, 20, 29, palette.Sandal)

	deco.Apply(c)
	return c
}

// drawFace paints skin, eyes and mouth. Decorations that cover the head call
// it again to restore the face on top.
func drawFace(c *pixel.Canvas) {
	c.Rect(12, 7, 19, 12, palette.Skin)
	c.Point(14, 9, palette.Eye)
	c.Point(17, 9, palette.Eye)
	c.Point(15, 11, palette.SkinDark)
	c.Point(16, 11, palette.SkinDark)
}
