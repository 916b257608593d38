// Implements parsing of a restricted subset of
// SVG path data into an abstract command list, which
// can then be flattened into a fillable polygon.
package svgpath

import "fmt"

// CommandKind identifies one path drawing command.
type CommandKind uint8

// Recognized path commands
const (
	MoveTo    CommandKind = iota // start the outline at (x, y)
	LineTo                       // straight segment to (x, y)
	CubicTo                      // cubic bezier through two control points
	HLineTo                      // horizontal segment, x operands only
	VLineTo                      // vertical segment, y operands only
	ClosePath                    // close the outline on the first point
)

func (k CommandKind) String() string {
	switch k {
	case MoveTo:
		return "moveto"
	case LineTo:
		return "lineto"
	case CubicTo:
		return "curveto"
	case HLineTo:
		return "horizontal lineto"
	case VLineTo:
		return "vertical lineto"
	case ClosePath:
		return "closepath"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// Command is one tokenized command letter group together with
// every numeric operand that followed it.
type Command struct {
	Kind CommandKind
	Args []float64
}

// Point is a coordinate pair in SVG user-space units.
type Point struct {
	X, Y float64
}

// Polygon is an ordered point sequence approximating a path.
// A closed source path yields equal first and last points.
type Polygon []Point

// Transform returns a copy of the polygon with m applied to every point.
func (pg Polygon) Transform(m Matrix) Polygon {
	out := make(Polygon, len(pg))
	for i, p := range pg {
		out[i] = m.TransformPoint(p)
	}
	return out
}

// ParsePolygon tokenizes and flattens path data in one step.
func ParsePolygon(data string) (Polygon, error) {
	cmds, err := Tokenize(data)
	if err != nil {
		return nil, err
	}
	return Flatten(cmds)
}
