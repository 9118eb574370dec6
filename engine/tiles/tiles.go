// Package tiles paints the 16x16 terrain and object tiles.
package tiles

import (
	"image/color"
	"math/rand"

	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Size is the edge length of every tile.
const Size = 16

// DefaultSeed seeds the speckle generator unless a run overrides it.
const DefaultSeed int64 = 42

// Detail paints texture on top of a filled tile. Randomized details draw
// from rng; fixed ones ignore it.
type Detail interface {
	Draw(c *pixel.Canvas, rng *rand.Rand)
}

// Tile is a base-color tile with an optional detail pass.
type Tile struct {
	Name   string
	Base   color.NRGBA
	Detail Detail
}

// Base lists the base tiles in generation order. The order matters: every
// randomized detail consumes the shared generator in turn.
var Base = []Tile{
	{"tile_grass", pixel.MustHex("#58A838"), Speckle{Count: 12, Primary: pixel.MustHex("#48A030"), Alternate: ptr(pixel.MustHex("#388020"))}},
	{"tile_sand", pixel.MustHex("#D8C888"), Speckle{Count: 8, Primary: pixel.MustHex("#E8D898"), Alternate: ptr(pixel.MustHex("#C8B878"))}},
	{"tile_water", pixel.MustHex("#3888C8"), Lattice{StepX: 2, StepY: 4, Threshold: 0.6, Color: pixel.MustHex("#78C8F0")}},
	{"tile_stone_floor", pixel.MustHex("#A8A098"), stoneFloor},
	{"tile_dirt_path", pixel.MustHex("#A88868"), Speckle{Count: 6, Primary: pixel.MustHex("#987858")}},
	{"tile_wall_stone", pixel.MustHex("#686868"), stoneWall},
	{"tile_wall_mud", pixel.MustHex("#B89868"), Speckle{Count: 8, Primary: pixel.MustHex("#A88050")}},
}

var (
	mortar = pixel.MustHex("#989088")
	grout  = pixel.MustHex("#484848")

	stoneFloor = Lines{
		{0, 7, 15, 7, mortar},
		{7, 0, 7, 15, mortar},
	}
	stoneWall = Lines{
		{0, 5, 15, 5, grout},
		{0, 10, 15, 10, grout},
		{4, 0, 4, 5, grout},
		{11, 5, 11, 10, grout},
		{7, 10, 7, 15, grout},
	}
)

// Build fills a tile with base and runs detail over it.
func Build(base color.NRGBA, detail Detail, rng *rand.Rand) *pixel.Canvas {
	c := pixel.New(Size, Size, pixel.ModeRGBA, base)
	if detail != nil {
		detail.Draw(c, rng)
	}
	return c
}

// NewRand returns the generator threaded through every speckle detail.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Speckle scatters Count single pixels at random positions. With an
// Alternate color each pixel flips a coin between the two.
type Speckle struct {
	Count     int
	Primary   color.NRGBA
	Alternate *color.NRGBA
}

func (s Speckle) Draw(c *pixel.Canvas, rng *rand.Rand) {
	for i := 0; i < s.Count; i++ {
		x, y := rng.Intn(c.Width()), rng.Intn(c.Height())
		clr := s.Primary
		if s.Alternate != nil && rng.Float64() <= 0.5 {
			clr = *s.Alternate
		}
		c.Point(x, y, clr)
	}
}

// Lattice speckles only grid points, each with probability 1-Threshold.
// A non-positive step draws nothing.
type Lattice struct {
	StepX, StepY int
	Threshold    float64
	Color        color.NRGBA
}

func (l Lattice) Draw(c *pixel.Canvas, rng *rand.Rand) {
	if l.StepX <= 0 || l.StepY <= 0 {
		return
	}
	for y := 0; y < c.Height(); y += l.StepY {
		for x := 0; x < c.Width(); x += l.StepX {
			if rng.Float64() > l.Threshold {
				c.Point(x, y, l.Color)
			}
		}
	}
}

// Segment is one fixed line of a Lines overlay.
type Segment struct {
	X0, Y0, X1, Y1 int
	Color          color.NRGBA
}

// Lines draws fixed segments and never touches the generator.
type Lines []Segment

func (ls Lines) Draw(c *pixel.Canvas, _ *rand.Rand) {
	for _, s := range ls {
		c.Line(s.X0, s.Y0, s.X1, s.Y1, s.Color)
	}
}

func ptr(c color.NRGBA) *color.NRGBA { return &c }
