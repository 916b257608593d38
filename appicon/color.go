package appicon

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor resolves a background given as #rgb, #rrggbb or an SVG
// 1.1 color name such as "midnightblue". The result is always opaque.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hex)
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	var v [3]uint8
	switch len(hex) {
	case 3:
		for i := range v {
			n, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
			}
			v[i] = uint8(n<<4 | n)
		}
	case 6:
		for i := range v {
			n, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			if err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
			}
			v[i] = uint8(n)
		}
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
}
