// Implements generation of an iOS AppIcon.appiconset from a single
// SVG glyph: each appearance pass renders the flattened glyph over
// its own background on a padded square canvas.
package appicon

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog"

	"github.com/kuilhq/icongen/render"
	"github.com/kuilhq/icongen/svgicon"
	"github.com/kuilhq/icongen/svgpath"
)

// Brand colors of the shipped icon assets.
var (
	Violet     = color.NRGBA{R: 69, G: 64, B: 226, A: 255}
	DarkViolet = color.NRGBA{R: 45, G: 42, B: 158, A: 255}
	White      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	// DefaultSize is the pixel edge of the marketing icon.
	DefaultSize = 1024
	// DefaultPadding is the canvas fraction kept clear around the glyph.
	DefaultPadding = 0.15
	// DefaultDesignSize stands in when the SVG declares no view box.
	DefaultDesignSize = 1220
)

// File names inside (and beside) the icon set. Xcode references the
// first three from the manifest; the master copy stays with the SVG
// source for design review.
const (
	fileLight    = "AppIcon.png"
	fileDark     = "AppIcon-Dark.png"
	fileTinted   = "AppIcon-Tinted.png"
	fileMaster   = "AppIcon-1024.png"
	manifestName = "Contents.json"
)

// Palette carries the appearance backgrounds. The glyph itself is
// always white; tinted icons get a transparent canvas instead.
type Palette struct {
	Light color.NRGBA
	Dark  color.NRGBA
}

// DefaultPalette returns the brand violet pair.
func DefaultPalette() Palette {
	return Palette{Light: Violet, Dark: DarkViolet}
}

// IconSpec parameterizes one rendering pass.
type IconSpec struct {
	Name       string      // appearance name, used for logs
	FileName   string
	Size       int
	Background color.NRGBA // zero alpha leaves the canvas transparent
	Foreground color.NRGBA
}

// Generator drives one icon set generation run.
//
// The zero value is not usable directly; fill SVGPath and OutDir and
// leave the remaining fields zero to get the defaults above.
type Generator struct {
	SVGPath    string  // source SVG document
	OutDir     string  // the AppIcon.appiconset directory
	Size       int
	Padding    float64 // fraction of the edge kept clear around the glyph
	DesignSize float64 // user-space size assumed when the SVG has no view box
	Palette    Palette
	Legacy     bool    // also emit the per device size matrix
	Log        zerolog.Logger
}

func (g *Generator) size() int {
	if g.Size > 0 {
		return g.Size
	}
	return DefaultSize
}

func (g *Generator) designSize() float64 {
	if g.DesignSize > 0 {
		return g.DesignSize
	}
	return DefaultDesignSize
}

func (g *Generator) padding() float64 {
	if g.Padding > 0 {
		return g.Padding
	}
	return DefaultPadding
}

func (g *Generator) palette() Palette {
	if g.Palette == (Palette{}) {
		return DefaultPalette()
	}
	return g.Palette
}

// Variants returns the three passes of a run: light, dark and the
// tinted variant iOS recolors at the platform level.
func (g *Generator) Variants() []IconSpec {
	pal := g.palette()
	size := g.size()
	return []IconSpec{
		{Name: "light", FileName: fileLight, Size: size, Background: pal.Light, Foreground: White},
		{Name: "dark", FileName: fileDark, Size: size, Background: pal.Dark, Foreground: White},
		{Name: "tinted", FileName: fileTinted, Size: size, Background: color.NRGBA{}, Foreground: White},
	}
}

// Render runs one pass: the SVG source is read fresh, its first path
// flattened to a polygon, mapped into pixel space and filled over the
// background.
func (g *Generator) Render(spec IconSpec) (*image.RGBA, error) {
	icon, err := svgicon.ReadIcon(g.SVGPath)
	if err != nil {
		return nil, err
	}
	poly, err := svgpath.ParsePolygon(icon.PathData)
	if err != nil {
		return nil, err
	}

	design := icon.ViewBox.W
	if design == 0 {
		design = g.designSize()
	}
	// padding is truncated to whole pixels before the scale is derived
	pad := float64(int(float64(spec.Size) * g.padding()))
	scale := (float64(spec.Size) - 2*pad) / design
	m := svgpath.Translate(pad, pad).Multiply(svgpath.Scale(scale, scale))

	canvas := render.NewCanvas(spec.Size, spec.Background)
	canvas.FillPolygon(poly.Transform(m), spec.Foreground)
	return canvas.Image(), nil
}

// Run renders every variant into OutDir, duplicates the light master
// beside the SVG source and writes the Contents.json manifest. The
// first error aborts the run; files already written are left in place.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.OutDir, 0755); err != nil {
		return fmt.Errorf("creating icon set directory: %w", err)
	}

	var master *image.RGBA
	for _, spec := range g.Variants() {
		g.Log.Info().Str("variant", spec.Name).Int("size", spec.Size).Msg("rendering icon")
		img, err := g.Render(spec)
		if err != nil {
			return fmt.Errorf("rendering %s icon: %w", spec.Name, err)
		}
		target := filepath.Join(g.OutDir, spec.FileName)
		if err := imaging.Save(img, target); err != nil {
			return fmt.Errorf("saving %s: %w", spec.FileName, err)
		}
		g.Log.Info().Str("file", target).Msg("saved")
		if spec.FileName == fileLight {
			master = img
		}
	}

	copyPath := filepath.Join(filepath.Dir(g.SVGPath), fileMaster)
	if err := imaging.Save(master, copyPath); err != nil {
		return fmt.Errorf("saving master copy: %w", err)
	}
	g.Log.Info().Str("file", copyPath).Msg("saved master copy")

	manifest := DefaultManifest()
	if g.Legacy {
		images, err := g.legacyIcons(master)
		if err != nil {
			return err
		}
		manifest.Images = append(manifest.Images, images...)
	}
	if err := manifest.Write(g.OutDir); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	g.Log.Info().Int("images", len(manifest.Images)).Msg("manifest written")
	return nil
}
