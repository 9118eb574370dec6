package tiles

import (
	"github.com/1siamBot/gospel-assets/engine/palette"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Object is a hand-placed tile with no base/detail split.
type Object struct {
	Name string
	Draw func() *pixel.Canvas
}

// Objects lists the bespoke tiles in generation order.
var Objects = []Object{
	{"tile_door", door},
	{"tile_chest", chest},
	{"tile_altar", altar},
	{"tile_tree", tree},
	{"tile_bush", bush},
	{"tile_rock", rock},
}

var (
	doorWood  = pixel.MustHex("#5A3A1A")
	doorFrame = pixel.MustHex("#7A5A3A")
)

func door() *pixel.Canvas {
	c := Build(doorWood, nil, nil)
	c.Rect(2, 0, 13, 15, doorFrame)
	c.Rect(3, 1, 12, 14, doorWood)
	// Panels
	c.Rect(6, 1, 9, 6, doorFrame)
	c.Rect(6, 8, 9, 13, doorFrame)
	c.Point(11, 8, palette.Gold) // handle
	return c
}

func chest() *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)
	c.Rect(2, 6, 13, 14, palette.Brown)
	c.Rect(2, 6, 13, 9, palette.BrownDark)
	c.Rect(6, 8, 9, 10, palette.Gold) // lock
	c.Rect(1, 14, 14, 15, palette.BrownDark)
	return c
}

func altar() *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)
	c.Rect(3, 4, 12, 14, pixel.MustHex("#D8D0C8"))
	c.Rect(2, 4, 13, 5, pixel.MustHex("#E8E0D8")) // top slab
	c.Rect(5, 2, 10, 3, palette.Gold)
	c.Point(7, 1, palette.Flame)
	return c
}

func tree() *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)
	c.Rect(6, 10, 9, 15, palette.Brown)
	c.Rect(3, 2, 12, 10, palette.Foliage)
	c.Rect(5, 1, 10, 3, palette.FoliageLit)
	return c
}

func bush() *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)
	c.Rect(2, 6, 13, 14, palette.Foliage)
	c.Rect(4, 4, 11, 7, palette.FoliageLit)
	return c
}

func rock() *pixel.Canvas {
	c := pixel.NewTransparent(Size, Size)
	c.Rect(3, 8, 12, 14, pixel.MustHex("#787878"))
	c.Rect(4, 6, 11, 9, pixel.MustHex("#989898"))
	c.Rect(5, 7, 8, 8, pixel.MustHex("#A8A8A8")) // highlight
	return c
}
