package svgpath

import (
	"fmt"
	"strconv"
	"strings"

	gl "github.com/rustyoz/genericlexer"
)

// commandKinds maps recognized command letters. Lower case is
// treated the same as upper case, so every coordinate is absolute.
var commandKinds = map[string]CommandKind{
	"M": MoveTo,
	"L": LineTo,
	"C": CubicTo,
	"H": HLineTo,
	"V": VLineTo,
	"Z": ClosePath,
}

// Tokenize scans path data for command letter plus operand groups.
// Unrecognized commands (arcs, quadratic and smooth variants) are
// dropped together with their operands, as are numbers appearing
// before the first command letter.
func Tokenize(data string) ([]Command, error) {
	if strings.TrimSpace(data) == "" {
		return nil, nil
	}
	l, _ := gl.Lex("path", data)
	var (
		cmds []Command
		open bool // collecting operands for the last command
	)
	for {
		i := l.NextItem()
		switch i.Type {
		case gl.ItemEOS:
			return cmds, nil
		case gl.ItemError:
			return nil, fmt.Errorf("path data: %s", i.Value)
		case gl.ItemLetter:
			kind, ok := commandKinds[strings.ToUpper(i.Value)]
			if !ok {
				open = false
				continue
			}
			cmds = append(cmds, Command{Kind: kind})
			open = true
		case gl.ItemNumber:
			if !open {
				continue
			}
			n, err := strconv.ParseFloat(i.Value, 64)
			if err != nil {
				return nil, fmt.Errorf("path data: %w", err)
			}
			last := &cmds[len(cmds)-1]
			last.Args = append(last.Args, n)
		default:
			// separators carry no meaning
		}
	}
}
