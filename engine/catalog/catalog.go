// Package catalog writes generated images into an Xcode asset catalog:
// one <name>.imageset folder per asset holding the PNG and a Contents.json
// descriptor.
package catalog

import (
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"

	"github.com/1siamBot/gospel-assets/engine/pixel"
)

const (
	// ContentsFile is the descriptor written next to every image.
	ContentsFile = "Contents.json"
	idiom        = "universal"
	author       = "xcode"
)

// Scales declared in every descriptor. Only 1x is rendered unless the
// writer is built with WithUpscale.
var Scales = []int{1, 2, 3}

// Asset is one named image ready to be written.
type Asset struct {
	Name   string
	Canvas *pixel.Canvas
}

// Contents mirrors Contents.json.
type Contents struct {
	Images []ImageEntry `json:"images"`
	Info   Info         `json:"info"`
}

// ImageEntry declares one display scale. Filename is empty for a
// placeholder scale with no backing file.
type ImageEntry struct {
	Filename string `json:"filename,omitempty"`
	Idiom    string `json:"idiom"`
	Scale    string `json:"scale"`
}

// Info is the descriptor metadata block.
type Info struct {
	Author  string `json:"author"`
	Version int    `json:"version"`
}

// NewContents builds the descriptor for name. Scales listed in rendered get
// a filename; the rest are placeholders.
func NewContents(name string, rendered ...int) Contents {
	has := map[int]bool{1: true}
	for _, s := range rendered {
		has[s] = true
	}
	c := Contents{Info: Info{Author: author, Version: 1}}
	for _, s := range Scales {
		e := ImageEntry{Idiom: idiom, Scale: fmt.Sprintf("%dx", s)}
		if has[s] {
			e.Filename = FileName(name, s)
		}
		c.Images = append(c.Images, e)
	}
	return c
}

// FileName returns the PNG name for a scale: "name.png" at 1x and
// "name@Nx.png" above.
func FileName(name string, scale int) string {
	if scale == 1 {
		return name + ".png"
	}
	return fmt.Sprintf("%s@%dx.png", name, scale)
}

// Dir returns the imageset folder for name under root.
func Dir(root, name string) string {
	return filepath.Join(root, name+".imageset")
}

// Option configures a Writer.
type Option func(*Writer)

// WithUpscale renders the 2x and 3x scales with nearest-neighbour scaling
// instead of leaving them as placeholders.
func WithUpscale() Option {
	return func(w *Writer) { w.upscale = true }
}

// WithLogger routes progress lines to log.
func WithLogger(log *logrus.Entry) Option {
	return func(w *Writer) { w.log = log }
}

// Writer persists assets under a root directory.
type Writer struct {
	root    string
	upscale bool
	log     *logrus.Entry
}

// NewWriter returns a Writer rooted at root.
func NewWriter(root string, opts ...Option) *Writer {
	w := &Writer{root: root, log: logrus.NewEntry(logrus.StandardLogger())}
	for _, o := range opts {
		o(w)
	}
	w.log = w.log.WithField("component", "catalog")
	return w
}

// Save writes a's imageset. Creating the folder is idempotent; an existing
// imageset is overwritten.
func (w *Writer) Save(a Asset) error {
	dir := Dir(w.root, a.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("catalog: create %s: %w", dir, err)
	}

	img := a.Canvas.Image()
	path := filepath.Join(dir, FileName(a.Name, 1))
	if err := savePNG(path, img); err != nil {
		return fmt.Errorf("catalog: %s: %w", a.Name, err)
	}

	var rendered []int
	if w.upscale {
		for _, s := range Scales[1:] {
			p := filepath.Join(dir, FileName(a.Name, s))
			if err := savePNG(p, scale(img, s)); err != nil {
				return fmt.Errorf("catalog: %s@%dx: %w", a.Name, s, err)
			}
			w.log.WithFields(logrus.Fields{"asset": a.Name, "path": p}).Debug("wrote scaled variant")
			rendered = append(rendered, s)
		}
	}

	data, err := json.MarshalIndent(NewContents(a.Name, rendered...), "", "  ")
	if err != nil {
		return fmt.Errorf("catalog: encode %s: %w", ContentsFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, ContentsFile), data, 0644); err != nil {
		return fmt.Errorf("catalog: %s: %w", a.Name, err)
	}
	w.log.WithFields(logrus.Fields{"asset": a.Name, "path": path, "mode": a.Canvas.Mode()}).Info("wrote asset")
	return nil
}

// ReadContents loads the descriptor of an existing imageset.
func ReadContents(root, name string) (Contents, error) {
	var c Contents
	data, err := os.ReadFile(filepath.Join(Dir(root, name), ContentsFile))
	if err != nil {
		return c, err
	}
	err = json.Unmarshal(data, &c)
	return c, err
}

// scale enlarges img by an integer factor, keeping pixel edges hard.
func scale(img image.Image, factor int) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

func savePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
