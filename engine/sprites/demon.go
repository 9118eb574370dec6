package sprites

import (
	"github.com/1siamBot/gospel-assets/engine/palette"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// drawDemon paints the winged demon from scratch; none of Build's template
// pixels appear in it.
func drawDemon() *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)

	// Body and head
	c.Rect(10, 8, 21, 22, palette.DemonRed)
	c.Rect(12, 5, 19, 12, palette.DemonDark)

	for x := 14; x <= 17; x++ {
		c.Point(x, 8, palette.DemonGlow)
	}
	c.Rect(13, 10, 18, 11, palette.DemonMouth)

	// Horns
	c.Point(12, 4, palette.DemonRed)
	c.Point(11, 3, palette.DemonRed)
	c.Point(19, 4, palette.DemonRed)
	c.Point(20, 3, palette.DemonRed)

	// Wings
	c.Rect(5, 10, 9, 18, palette.DemonDark)
	c.Rect(22, 10, 26, 18, palette.DemonDark)

	// Claws
	c.Rect(8, 22, 10, 24, palette.DemonRed)
	c.Rect(21, 22, 23, 24, palette.DemonRed)

	// Legs
	c.Rect(12, 23, 14, 28, palette.DemonDark)
	c.Rect(17, 23, 19, 28, palette.DemonDark)

	// Tail
	c.Point(22, 22, palette.DemonRed)
	c.Point(23, 23, palette.DemonRed)
	c.Point(24, 24, palette.DemonRed)
	return c
}
