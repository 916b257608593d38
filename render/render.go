// Implements the icon canvas: a square RGBA image with solid
// background paint and polygon filling, by wrapping rasterx.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/kuilhq/icongen/svgpath"
)

// Canvas accumulates one icon rendering pass.
type Canvas struct {
	img    *image.RGBA
	filler *rasterx.Filler
}

// NewCanvas allocates a size x size canvas and paints the
// background. A zero alpha background leaves the canvas fully
// transparent.
func NewCanvas(size int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	return &Canvas{
		img:    img,
		filler: rasterx.NewFiller(size, size, scanner),
	}
}

// FillPolygon fills the polygon interior with the given color at
// full opacity, using the non zero winding rule. Outlines with fewer
// than 3 points are skipped, leaving the background untouched.
func (c *Canvas) FillPolygon(poly svgpath.Polygon, fill color.Color) {
	if len(poly) < 3 {
		return
	}
	c.filler.Clear()
	c.filler.SetWinding(true)
	c.filler.Start(toFixedP(poly[0].X, poly[0].Y))
	for _, p := range poly[1:] {
		c.filler.Line(toFixedP(p.X, p.Y))
	}
	c.filler.Stop(true)
	c.filler.SetColor(fill)
	c.filler.Draw()
	c.filler.Clear()
}

// Image exposes the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// WritePNG encodes the canvas to w.
func (c *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to the named file.
func (c *Canvas) SavePNG(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, c.img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}
