package svgicon

import (
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testIcon = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 1220 1220">
  <path fill="#FFFFFF" d="M100,100 L1120,100 L610,1120 Z"/>
</svg>`

const testIconTwoPaths = `<svg xmlns="http://www.w3.org/2000/svg" width="48px" height="48px">
  <path d="M0,0 L10,0 Z"/>
  <path d="M5,5 L6,6 Z"/>
</svg>`

const testIconNoPath = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 16">
  <rect x="1" y="1" width="14" height="14"/>
</svg>`

const testIconLatin1 = `<?xml version="1.0" encoding="ISO-8859-1"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 8 8">
  <path d="M0,0 H8 V8 Z"/>
</svg>`

func TestReadIconStream(t *testing.T) {
	is := is.New(t)

	icon, err := ReadIconStream(strings.NewReader(testIcon))
	is.NoErr(err)
	is.NotNil(icon)
	is.Equal(icon.PathData, "M100,100 L1120,100 L610,1120 Z")
	is.Equal(icon.ViewBox.W, 1220.0)
	is.Equal(icon.ViewBox.H, 1220.0)
}

func TestReadIconStreamFirstPathWins(t *testing.T) {
	is := is.New(t)

	icon, err := ReadIconStream(strings.NewReader(testIconTwoPaths))
	is.NoErr(err)
	is.Equal(icon.PathData, "M0,0 L10,0 Z")
	// width and height stand in for the missing view box
	is.Equal(icon.ViewBox.W, 48.0)
	is.Equal(icon.ViewBox.H, 48.0)
}

func TestReadIconStreamNoPath(t *testing.T) {
	is := is.New(t)

	_, err := ReadIconStream(strings.NewReader(testIconNoPath))
	is.Equal(err, ErrPathNotFound)
}

func TestReadIconStreamCharset(t *testing.T) {
	is := is.New(t)

	icon, err := ReadIconStream(strings.NewReader(testIconLatin1))
	is.NoErr(err)
	is.Equal(icon.PathData, "M0,0 H8 V8 Z")
}

func TestReadIconMissingFile(t *testing.T) {
	is := is.New(t)

	_, err := ReadIcon("testdata/does-not-exist.svg")
	is.NotNil(err)
	is.OK(errors.Is(err, fs.ErrNotExist))
}
