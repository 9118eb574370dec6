// Package palette holds the SNES-style color literals shared by every asset
// generator, grouped by the role they play in the artwork.
package palette

import (
	"golang.org/x/image/colornames"

	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Skin and hair
var (
	Skin      = pixel.MustHex("#E8B878")
	SkinDark  = pixel.MustHex("#C89858")
	HairBrown = pixel.MustHex("#5A3A1A")
	HairBlack = pixel.MustHex("#2A1A0A")
	Eye       = pixel.MustHex("#182838")
)

// Garments
var (
	WhiteRobe   = pixel.MustHex("#F0F0E8")
	WhiteShadow = pixel.MustHex("#C8C8B8")
	BlueRobe    = pixel.MustHex("#4878A8")
	BlueShadow  = pixel.MustHex("#385878")
	GreenRobe   = pixel.MustHex("#78A848")
	GreenShadow = pixel.MustHex("#587838")
	TanRobe     = pixel.MustHex("#C8A878")
	TanShadow   = pixel.MustHex("#A88858")
	Purple      = pixel.MustHex("#7838A0")
	PurpleDark  = pixel.MustHex("#582878")
	Sandal      = pixel.MustHex("#A07838")
	Headscarf   = pixel.MustHex("#C87858")
	Phylactery  = pixel.MustHex("#1A1A1A")
	Plume       = pixel.MustHex("#C83030")
)

// Materials
var (
	Brown      = pixel.MustHex("#8B6838")
	BrownDark  = pixel.MustHex("#5A4828")
	Gold       = pixel.MustHex("#D8A830")
	GoldLight  = pixel.MustHex("#F0D060")
	Halo       = pixel.MustHex("#F8E878")
	MetalGray  = pixel.MustHex("#A0A0A8")
	MetalDark  = pixel.MustHex("#686878")
	Flame      = pixel.MustHex("#F8E040")
	Foliage    = pixel.MustHex("#388028")
	FoliageLit = pixel.MustHex("#48A038")
)

// Demon
var (
	DemonRed   = pixel.MustHex("#A01818")
	DemonDark  = pixel.MustHex("#681010")
	DemonMouth = pixel.MustHex("#200000")
	DemonEye   = pixel.Opaque(colornames.Red)
	DemonGlow  = pixel.Opaque(colornames.Yellow)
)

// UI chrome
var (
	PanelFill  = pixel.MustHex("#181828")
	BarTrough  = pixel.MustHex("#181818")
	BarFrame   = pixel.MustHex("#A0A0A0")
	Cursor     = pixel.MustHex("#F0F0F0")
	HealthGood = pixel.MustHex("#30A030")
	HealthLit  = pixel.MustHex("#48C848")
	HealthLow  = pixel.MustHex("#C83030")
	HealthHot  = pixel.MustHex("#E84848")
)
