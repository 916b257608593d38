package appicon

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// legacySize is one entry of the per device matrix used before the
// single universal 1024 icon: home screen, settings and spotlight
// sizes for iphone and ipad.
type legacySize struct {
	Idiom  string
	Points float64
	Scale  int
}

var legacySizes = []legacySize{
	{"iphone", 29, 2},
	{"iphone", 29, 3},
	{"iphone", 40, 2},
	{"iphone", 40, 3},
	{"iphone", 60, 2},
	{"iphone", 60, 3},
	{"ipad", 29, 1},
	{"ipad", 29, 2},
	{"ipad", 40, 1},
	{"ipad", 40, 2},
	{"ipad", 76, 1},
	{"ipad", 76, 2},
	{"ipad", 83.5, 2},
}

func (s legacySize) pixels() int {
	return int(s.Points*float64(s.Scale) + 0.5)
}

// points renders 29 as "29" but keeps the ipad pro "83.5".
func (s legacySize) points() string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", s.Points), ".0")
}

func (s legacySize) sizeString() string {
	return fmt.Sprintf("%sx%s", s.points(), s.points())
}

func (s legacySize) fileName() string {
	return fmt.Sprintf("AppIcon-%s@%dx.png", s.points(), s.Scale)
}

// legacyIcons resamples the light master down to every legacy size
// and returns the matching manifest descriptors.
func (g *Generator) legacyIcons(master image.Image) ([]ManifestImage, error) {
	images := make([]ManifestImage, 0, len(legacySizes))
	for _, s := range legacySizes {
		px := s.pixels()
		small := imaging.Resize(master, px, px, imaging.Lanczos)
		target := filepath.Join(g.OutDir, s.fileName())
		if err := imaging.Save(small, target); err != nil {
			return nil, fmt.Errorf("saving %s: %w", s.fileName(), err)
		}
		g.Log.Info().Str("file", target).Int("pixels", px).Msg("saved legacy icon")
		images = append(images, ManifestImage{
			FileName: s.fileName(),
			Idiom:    s.Idiom,
			Scale:    fmt.Sprintf("%dx", s.Scale),
			Size:     s.sizeString(),
		})
	}
	return images, nil
}
