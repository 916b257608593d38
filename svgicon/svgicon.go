// Reads the small subset of an SVG document needed to
// raster an icon glyph: the first path's data and the
// declared view box.
package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrPathNotFound means no path element carrying a d attribute
// was found in the document.
var ErrPathNotFound = errors.New("svgicon: no path data found")

var errParamMismatch = errors.New("svgicon: param mismatch")

// Icon holds the data extracted from an SVG document.
type Icon struct {
	ViewBox  struct{ X, Y, W, H float64 }
	PathData string
}

// ReadIconStream reads the icon from the given io.Reader.
// Only the first path element with a d attribute is kept, and its
// text is not validated as path grammar; later paths are ignored.
func ReadIconStream(stream io.Reader) (*Icon, error) {
	icon := &Icon{}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenPath := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		switch se.Name.Local {
		case "svg":
			if err := icon.readViewBox(se.Attr); err != nil {
				return nil, err
			}
		case "path":
			if seenPath {
				continue
			}
			for _, attr := range se.Attr {
				if attr.Name.Local == "d" {
					icon.PathData = attr.Value
					seenPath = true
				}
			}
		}
	}
	if !seenPath {
		return nil, ErrPathNotFound
	}
	return icon, nil
}

// ReadIcon reads the icon from the named file.
func ReadIcon(iconFile string) (*Icon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin)
}

// readViewBox parses the viewBox attribute, falling back to the
// width/height attributes when it is absent. A document declaring
// neither leaves the view box zero, which consumers treat as
// "use the configured design size".
func (icon *Icon) readViewBox(attrs []xml.Attr) error {
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			fields := splitOnCommaOrSpace(attr.Value)
			if len(fields) != 4 {
				return errParamMismatch
			}
			var box [4]float64
			for i, f := range fields {
				box[i], err = parseFloat(f)
				if err != nil {
					return err
				}
			}
			icon.ViewBox.X, icon.ViewBox.Y = box[0], box[1]
			icon.ViewBox.W, icon.ViewBox.H = box[2], box[3]
		case "width":
			width, err = parseFloat(attr.Value)
		case "height":
			height, err = parseFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if icon.ViewBox.W == 0 {
		icon.ViewBox.W = width
	}
	if icon.ViewBox.H == 0 {
		icon.ViewBox.H = height
	}
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}

// parseFloat reads a dimension value, tolerating a px unit suffix.
func parseFloat(v string) (float64, error) {
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	return strconv.ParseFloat(v, 64)
}
