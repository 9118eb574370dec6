// Package backgrounds paints the 320x240 battle scenes. Each scene is a fixed
// drawing script with no parameters.
package backgrounds

import (
	"image"
	"image/color"

	"github.com/1siamBot/gospel-assets/engine/palette"
	"github.com/1siamBot/gospel-assets/engine/pixel"
)

// Scene dimensions.
const (
	Width  = 320
	Height = 240
)

// Scene is one named background routine.
type Scene struct {
	Name string
	Draw func() *pixel.Canvas
}

// Scenes lists every background in generation order.
var Scenes = []Scene{
	{"bg_lakeshore", Lakeshore},
	{"bg_desert", Desert},
	{"bg_temple", Temple},
	{"bg_village", Village},
	{"bg_mountain", Mountain},
}

var (
	daySky    = pixel.MustHex("#88C8F8")
	lake      = pixel.MustHex("#3888C8")
	lakeDeep  = pixel.MustHex("#2878B8")
	foam      = pixel.MustHex("#78C8F0")
	shore     = pixel.MustHex("#D8C888")
	shoreWet  = pixel.MustHex("#C8B878")
	stoneDark = pixel.MustHex("#484038")
	boulder   = pixel.MustHex("#787878")
	meadow    = pixel.MustHex("#58A838")
	snow      = pixel.MustHex("#F0F0F0")
)

// newScene returns an opaque scene canvas filled with sky.
func newScene(sky color.NRGBA) *pixel.Canvas {
	return pixel.New(Width, Height, pixel.ModeRGB, sky)
}

// Lakeshore is a daytime lake with a foam-capped shoreline under the sun.
func Lakeshore() *pixel.Canvas {
	c := newScene(daySky)
	// Water
	c.Rect(0, 100, 319, 160, lake)
	c.Rect(0, 140, 319, 160, lakeDeep)
	// Shore
	c.Rect(0, 161, 319, 200, shore)
	c.Rect(0, 201, 319, 239, shoreWet)
	c.Ellipse(260, 15, 290, 45, palette.Flame) // sun
	for x := 0; x < Width; x += 20 {
		c.Arc(x, 125, x+18, 140, 0, 180, foam)
	}
	return c
}

// Desert is a sun-bleached sky over rolling dunes and scattered rocks.
func Desert() *pixel.Canvas {
	c := newScene(pixel.MustHex("#E8D898"))
	c.Rect(0, 0, 319, 80, pixel.MustHex("#C8A050"))
	c.Rect(0, 0, 319, 50, pixel.MustHex("#F0C868"))
	c.Ellipse(140, 10, 180, 50, pixel.MustHex("#F8F0A0"))
	// Dunes
	c.Ellipse(-40, 100, 160, 200, pixel.MustHex("#D8C080"))
	c.Ellipse(120, 110, 360, 210, pixel.MustHex("#C8B070"))
	c.Rect(0, 180, 319, 239, pixel.MustHex("#B8A060"))
	// Rocks
	rocks := pixel.MustHex("#908060")
	c.Rect(50, 170, 70, 180, rocks)
	c.Rect(240, 175, 260, 182, rocks)
	return c
}

// Temple is a pillared interior with a checkerboard floor and lit altar.
func Temple() *pixel.Canvas {
	c := newScene(pixel.MustHex("#383028"))
	c.Rect(0, 0, 319, 120, stoneDark) // back wall

	pillar := pixel.MustHex("#686058")
	capital := pixel.MustHex("#787068")
	for _, x := range []int{40, 120, 200, 280} {
		c.Rect(x-8, 20, x+8, 180, pillar)
		c.Rect(x-10, 16, x+10, 24, capital)
		c.Rect(x-10, 176, x+10, 184, capital)
	}

	// Checkerboard floor
	light := pixel.MustHex("#585048")
	for y := 180; y < Height; y += 16 {
		for x := 0; x < Width; x += 32 {
			tile := stoneDark
			if (x/32+y/16)%2 == 0 {
				tile = light
			}
			c.Rect(x, y, x+31, y+15, tile)
		}
	}

	// Altar and menorah
	c.Rect(140, 80, 180, 120, pixel.MustHex("#A89878"))
	c.Rect(135, 76, 185, 82, pixel.MustHex("#B8A888"))
	c.Point(160, 72, palette.Flame)
	c.Point(155, 74, palette.Flame)
	c.Point(165, 74, palette.Flame)
	return c
}

// Village is two houses flanking a dirt path under a day sky.
func Village() *pixel.Canvas {
	c := newScene(daySky)
	c.Rect(0, 140, 319, 239, pixel.MustHex("#B89868"))
	c.Rect(100, 150, 220, 239, pixel.MustHex("#A88858")) // path

	houses := []struct {
		x, w int
		wall string
	}{
		{10, 80, "#D8C8A8"},
		{230, 80, "#C8B898"},
	}
	roof := pixel.MustHex("#A07838")
	door := pixel.MustHex("#5A3A1A")
	for _, h := range houses {
		mid := h.x + h.w/2
		c.Rect(h.x, 60, h.x+h.w, 140, pixel.MustHex(h.wall))
		c.Rect(mid-8, 110, mid+8, 140, door)
		c.Rect(h.x+10, 80, h.x+25, 95, foam)
		c.Rect(h.x+h.w-25, 80, h.x+h.w-10, 95, foam)
		c.Polygon([]image.Point{{h.x - 5, 60}, {h.x + h.w + 5, 60}, {mid, 35}}, roof)
	}
	return c
}

// Mountain is a snow-capped range above a meadow with boulders.
func Mountain() *pixel.Canvas {
	c := newScene(pixel.MustHex("#6898C8"))
	far := pixel.MustHex("#787868")
	c.Polygon([]image.Point{{0, 120}, {80, 40}, {160, 120}}, far)
	c.Polygon([]image.Point{{100, 120}, {200, 20}, {300, 120}}, pixel.MustHex("#686858"))
	c.Polygon([]image.Point{{200, 120}, {280, 50}, {340, 120}}, far)
	// Snow caps
	c.Polygon([]image.Point{{70, 50}, {80, 40}, {90, 50}}, snow)
	c.Polygon([]image.Point{{190, 30}, {200, 20}, {210, 30}}, snow)

	c.Rect(0, 120, 319, 180, meadow)
	c.Rect(0, 180, 319, 239, pixel.MustHex("#488828"))

	c.Ellipse(40, 170, 70, 195, boulder)
	c.Ellipse(250, 175, 275, 192, pixel.MustHex("#888888"))
	return c
}
