package sprites

import (
	"fmt"

	"github.com/1siamBot/gospel-assets/engine/palette"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Decoration is the per-character overlay drawn after the base template.
type Decoration int

const (
	None Decoration = iota
	Halo
	Headband
	Helmet
	Phylactery
	Horns
	Headscarf
)

var decorationNames = [...]string{"none", "halo", "headband", "helmet", "phylactery", "horns", "headscarf"}

func (d Decoration) String() string {
	if d < 0 || int(d) >= len(decorationNames) {
		return fmt.Sprintf("Decoration(%d)", int(d))
	}
	return decorationNames[d]
}

// Apply paints the overlay onto c.
func (d Decoration) Apply(c *pixel.Canvas) {
	switch d {
	case Halo:
		c.Rect(13, 2, 18, 3, palette.Halo)
		c.Point(12, 3, palette.Halo)
		c.Point(19, 3, palette.Halo)
		c.Rect(14, 20, 17, 20, palette.Gold) // sash

	case Headband:
		c.Rect(12, 6, 19, 6, palette.Brown)

	case Helmet:
		c.Rect(11, 3, 20, 6, palette.MetalGray)
		c.Rect(14, 2, 17, 2, palette.MetalDark) // crest
		c.Rect(15, 1, 16, 1, palette.Plume)
		// Shield, left hand
		c.Rect(5, 16, 9, 22, palette.MetalGray)
		c.Rect(6, 17, 8, 21, palette.MetalDark)
		// Spear, right hand
		c.Rect(23, 8, 23, 23, palette.Brown)
		c.Rect(22, 7, 24, 9, palette.MetalGray)

	case Phylactery:
		c.Rect(14, 5, 17, 6, palette.Phylactery)
		c.Rect(13, 12, 18, 15, palette.HairBlack) // beard

	case Horns:
		c.Point(12, 3, palette.DemonRed)
		c.Point(11, 2, palette.DemonRed)
		c.Point(19, 3, palette.DemonRed)
		c.Point(20, 2, palette.DemonRed)
		c.Point(14, 9, palette.DemonEye)
		c.Point(17, 9, palette.DemonEye)
		// Claws
		c.Rect(7, 22, 9, 24, palette.DemonRed)
		c.Rect(22, 22, 24, 24, palette.DemonRed)

	case Headscarf:
		c.Rect(11, 4, 20, 7, palette.Headscarf)
		drawFace(c)
	}
}
