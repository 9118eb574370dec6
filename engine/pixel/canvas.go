// Package pixel provides the raster canvas and the hard-edged shape primitives
// used by the asset generators. Every primitive paints with replace semantics
// (no blending) and clips silently at the canvas edge.
package pixel

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Mode selects whether a canvas carries transparency.
type Mode int

const (
	// ModeRGB canvases are fully opaque; any color drawn is forced to alpha 255.
	ModeRGB Mode = iota
	// ModeRGBA canvases start transparent unless a background is given.
	ModeRGBA
)

// String names the mode the way image libraries do ("RGB", "RGBA").
func (m Mode) String() string {
	if m == ModeRGB {
		return "RGB"
	}
	return "RGBA"
}

// Transparent is the zero color, used as the background of sprite canvases.
var Transparent = color.NRGBA{}

// Canvas is a fixed-size mutable pixel buffer.
type Canvas struct {
	img  *image.NRGBA
	mode Mode
}

// New allocates a w×h canvas filled with bg.
func New(w, h int, mode Mode, bg color.NRGBA) *Canvas {
	c := &Canvas{img: image.NewNRGBA(image.Rect(0, 0, w, h)), mode: mode}
	if mode == ModeRGB {
		bg.A = 255
	}
	if bg != Transparent {
		c.Rect(0, 0, w-1, h-1, bg)
	}
	return c
}

// NewTransparent is shorthand for an empty RGBA canvas.
func NewTransparent(w, h int) *Canvas {
	return New(w, h, ModeRGBA, Transparent)
}

// Width is the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height is the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Mode reports whether the canvas carries transparency.
func (c *Canvas) Mode() Mode { return c.mode }

// Image exposes the backing buffer for encoding.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// At returns the pixel at (x, y), or Transparent outside the canvas.
func (c *Canvas) At(x, y int) color.NRGBA {
	if !c.in(x, y) {
		return Transparent
	}
	return c.img.NRGBAAt(x, y)
}

func (c *Canvas) in(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.img.Rect.Max.X && y < c.img.Rect.Max.Y
}

// ==================== DRAWING PRIMITIVES ====================

// Point sets a single pixel.
func (c *Canvas) Point(x, y int, clr color.NRGBA) {
	if !c.in(x, y) {
		return
	}
	if c.mode == ModeRGB {
		clr.A = 255
	}
	c.img.SetNRGBA(x, y, clr)
}

// Rect fills the rectangle with corners (x1,y1) and (x2,y2), both inclusive.
func (c *Canvas) Rect(x1, y1, x2, y2 int, clr color.NRGBA) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for y := max(y1, 0); y <= y2 && y < c.Height(); y++ {
		for x := max(x1, 0); x <= x2 && x < c.Width(); x++ {
			c.Point(x, y, clr)
		}
	}
}

// Border draws the one-pixel outline of the inclusive rectangle.
func (c *Canvas) Border(x1, y1, x2, y2 int, clr color.NRGBA) {
	c.Rect(x1, y1, x2, y1, clr)
	c.Rect(x1, y2, x2, y2, clr)
	c.Rect(x1, y1, x1, y2, clr)
	c.Rect(x2, y1, x2, y2, clr)
}

// Line draws a Bresenham segment including both endpoints.
func (c *Canvas) Line(x0, y0, x1, y1 int, clr color.NRGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Point(x0, y0, clr)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Ellipse fills the ellipse inscribed in the inclusive box (x0,y0)-(x1,y1).
// A pixel is inside when its center lies within the ellipse.
func (c *Canvas) Ellipse(x0, y0, x1, y1 int, clr color.NRGBA) {
	cx, cy, rx, ry := ellipseFrame(x0, y0, x1, y1)
	for y := max(y0, 0); y <= y1 && y < c.Height(); y++ {
		for x := max(x0, 0); x <= x1 && x < c.Width(); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1.0 {
				c.Point(x, y, clr)
			}
		}
	}
}

// Arc strokes the outline of the ellipse inscribed in the box between two
// angles in degrees. Angles run clockwise from three o'clock, so 0..180 is
// the lower half.
func (c *Canvas) Arc(x0, y0, x1, y1 int, start, end float64, clr color.NRGBA) {
	cx, cy, rx, ry := ellipseFrame(x0, y0, x1, y1)
	for a := start; a <= end; a += 0.5 {
		t := a * math.Pi / 180
		px := int(math.Floor(cx + (rx-0.5)*math.Cos(t)))
		py := int(math.Floor(cy + (ry-0.5)*math.Sin(t)))
		c.Point(px, py, clr)
	}
}

// Polygon fills a closed polygon. Vertices are pixel centers; the outline is
// painted too, so edge pixels always belong to the shape.
func (c *Canvas) Polygon(pts []image.Point, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	var xs []float64
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		fy := float64(y)
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			if y < a.Y || y >= b.Y {
				continue
			}
			t := (fy - float64(a.Y)) / float64(b.Y-a.Y)
			xs = append(xs, float64(a.X)+t*float64(b.X-a.X))
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			lo, hi := int(math.Ceil(xs[i])), int(math.Floor(xs[i+1]))
			if lo <= hi {
				c.Rect(lo, y, hi, y, clr)
			}
		}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		c.Line(a.X, a.Y, b.X, b.Y, clr)
	}
}

func ellipseFrame(x0, y0, x1, y1 int) (cx, cy, rx, ry float64) {
	cx = float64(x0+x1+1) / 2
	cy = float64(y0+y1+1) / 2
	rx = float64(x1-x0+1) / 2
	ry = float64(y1-y0+1) / 2
	return
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
