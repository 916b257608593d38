package appicon

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#4540e2", Violet},
		{"#2D2A9E", DarkViolet},
		{"#fff", White},
		{" white ", White},
		{"Red", color.NRGBA{R: 0xff, A: 0xff}},
		{"midnightblue", color.NRGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xff}},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		require.NoError(t, err, test.in)
		assert.Equal(t, test.want, got, test.in)
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#12345", "#gggggg", "notacolor", "#"} {
		_, err := ParseColor(in)
		assert.Error(t, err, in)
	}
}
