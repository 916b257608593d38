package svgpath

import (
	"errors"
	"fmt"
)

var errParamMismatch = errors.New("operand count mismatch")

// cubicSamples are the fixed curve parameters approximating each
// cubic segment. The trailing 1.0 keeps the segment endpoint an
// exact polygon vertex.
var cubicSamples = [4]float64{0.25, 0.5, 0.75, 1.0}

// Flatten interprets the command list, advancing a current point
// cursor and collecting the outline. Coordinates stay in user-space
// units; apply a Matrix afterwards to reach pixel space.
func Flatten(cmds []Command) (Polygon, error) {
	var (
		poly Polygon
		cur  Point
	)
	for _, c := range cmds {
		switch c.Kind {
		case MoveTo:
			if len(c.Args) < 2 {
				return nil, fmt.Errorf("%s: %w", c.Kind, errParamMismatch)
			}
			// only the leading pair moves the cursor;
			// surplus operands are ignored
			cur = Point{c.Args[0], c.Args[1]}
			poly = append(poly, cur)
		case LineTo:
			if len(c.Args)%2 != 0 {
				return nil, fmt.Errorf("%s: %w", c.Kind, errParamMismatch)
			}
			for i := 0; i+1 < len(c.Args); i += 2 {
				cur = Point{c.Args[i], c.Args[i+1]}
				poly = append(poly, cur)
			}
		case CubicTo:
			// a trailing incomplete sextet is dropped
			for i := 0; i+5 < len(c.Args); i += 6 {
				c1 := Point{c.Args[i], c.Args[i+1]}
				c2 := Point{c.Args[i+2], c.Args[i+3]}
				end := Point{c.Args[i+4], c.Args[i+5]}
				for _, t := range cubicSamples {
					poly = append(poly, cubicAt(cur, c1, c2, end, t))
				}
				cur = end
			}
		case HLineTo:
			for _, x := range c.Args {
				cur.X = x
				poly = append(poly, cur)
			}
		case VLineTo:
			for _, y := range c.Args {
				cur.Y = y
				poly = append(poly, cur)
			}
		case ClosePath:
			// operands are ignored; closing an empty outline is a no-op
			if len(poly) > 0 {
				poly = append(poly, poly[0])
			}
		}
	}
	return poly, nil
}

// cubicAt evaluates the cubic bezier blending formula at parameter t.
func cubicAt(p0, c1, c2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p3.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p3.Y,
	}
}
