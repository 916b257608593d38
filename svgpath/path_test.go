package svgpath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flattenTest struct {
	Description string
	Data        string
	Want        Polygon
}

var flattenTests = []flattenTest{
	{
		Description: "triangle with close",
		Data:        "M0,0 L10,0 L10,10 Z",
		Want:        Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
	},
	{
		Description: "lower case treated as absolute",
		Data:        "m0,0 l10,0 l10,10 z",
		Want:        Polygon{{0, 0}, {10, 0}, {10, 10}, {0, 0}},
	},
	{
		Description: "horizontal and vertical segments",
		Data:        "M1,2 H5 V7",
		Want:        Polygon{{1, 2}, {5, 2}, {5, 7}},
	},
	{
		Description: "repeated horizontal operands",
		Data:        "M1,2 H5 9",
		Want:        Polygon{{1, 2}, {5, 2}, {9, 2}},
	},
	{
		Description: "cursor starts at the origin without a moveto",
		Data:        "H5",
		Want:        Polygon{{5, 0}},
	},
	{
		Description: "close with trailing operands ignored",
		Data:        "M1,2 L5,2 Z9",
		Want:        Polygon{{1, 2}, {5, 2}, {1, 2}},
	},
	{
		Description: "moveto surplus operands ignored",
		Data:        "M1,2 3,4",
		Want:        Polygon{{1, 2}},
	},
	{
		Description: "lineto consumes several pairs",
		Data:        "M0,0 L1,1 2,2 3,3",
		Want:        Polygon{{0, 0}, {1, 1}, {2, 2}, {3, 3}},
	},
	{
		Description: "unsupported command dropped with operands",
		Data:        "M0,0 Q5,5 10,10 L1,1",
		Want:        Polygon{{0, 0}, {1, 1}},
	},
	{
		Description: "incomplete cubic sextet dropped",
		Data:        "M0,0 C1,1 2,2",
		Want:        Polygon{{0, 0}},
	},
	{
		Description: "negative and decimal operands",
		Data:        "M-1.5,2 L3,-4.25",
		Want:        Polygon{{-1.5, 2}, {3, -4.25}},
	},
	{
		Description: "empty data",
		Data:        "",
		Want:        nil,
	},
}

func TestFlatten(t *testing.T) {
	for _, test := range flattenTests {
		poly, err := ParsePolygon(test.Data)
		require.NoError(t, err, test.Description)
		assert.Equal(t, test.Want, poly, test.Description)
	}
}

func TestFlattenCubicSamples(t *testing.T) {
	poly, err := ParsePolygon("M0,0 C0,10 10,10 10,0")
	require.NoError(t, err)

	// the moveto point plus one sample per curve parameter
	require.Len(t, poly, 5)
	// the curve is symmetric about x=5, so the halfway sample
	// sits on the axis of symmetry
	assert.InDelta(t, 5.0, poly[2].X, 1e-9)
	assert.InDelta(t, 7.5, poly[2].Y, 1e-9)
	// the t=1 sample lands exactly on the segment endpoint
	assert.Equal(t, Point{10, 0}, poly[4])
}

func TestFlattenCubicAdvancesCursor(t *testing.T) {
	poly, err := ParsePolygon("M0,0 C0,10 10,10 10,0 L20,0")
	require.NoError(t, err)

	require.Len(t, poly, 6)
	assert.Equal(t, Point{20, 0}, poly[5])
}

func TestFlattenClosePath(t *testing.T) {
	poly, err := Flatten([]Command{{Kind: ClosePath}})
	require.NoError(t, err)
	assert.Empty(t, poly)

	poly, err = Flatten([]Command{
		{Kind: MoveTo, Args: []float64{3, 4}},
		{Kind: HLineTo, Args: []float64{9}},
		{Kind: ClosePath},
	})
	require.NoError(t, err)
	require.Len(t, poly, 3)
	assert.Equal(t, poly[0], poly[2])
}

func TestFlattenOperandMismatch(t *testing.T) {
	_, err := ParsePolygon("M5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errParamMismatch))

	_, err = ParsePolygon("M0,0 L1,2 3")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errParamMismatch))
}

func TestTokenize(t *testing.T) {
	cmds, err := Tokenize("M-1.5,2 L3,-4.25 Z")
	require.NoError(t, err)

	require.Len(t, cmds, 3)
	assert.Equal(t, MoveTo, cmds[0].Kind)
	assert.Equal(t, []float64{-1.5, 2}, cmds[0].Args)
	assert.Equal(t, LineTo, cmds[1].Kind)
	assert.Equal(t, []float64{3, -4.25}, cmds[1].Args)
	assert.Equal(t, ClosePath, cmds[2].Kind)
	assert.Empty(t, cmds[2].Args)
}

func TestTokenizeLeadingNumbersDropped(t *testing.T) {
	cmds, err := Tokenize("4,2 M1,1")
	require.NoError(t, err)

	require.Len(t, cmds, 1)
	assert.Equal(t, []float64{1, 1}, cmds[0].Args)
}

func TestPolygonTransform(t *testing.T) {
	m := Translate(5, 5).Multiply(Scale(2, 2))

	got := Polygon{{0, 0}, {10, 10}}.Transform(m)
	assert.Equal(t, Polygon{{5, 5}, {25, 25}}, got)

	assert.Empty(t, Polygon{}.Transform(m))
}

func TestMatrixIdentity(t *testing.T) {
	p := Point{3.5, -4}
	assert.Equal(t, p, Identity().TransformPoint(p))

	m := Translate(5, 5).Multiply(Scale(2, 2))
	assert.Equal(t, m, Identity().Multiply(m))
	assert.Equal(t, m, m.Multiply(Identity()))
}

func TestCommandKindString(t *testing.T) {
	assert.Equal(t, "moveto", MoveTo.String())
	assert.Equal(t, "closepath", ClosePath.String())
	assert.Equal(t, "CommandKind(9)", CommandKind(9).String())
}
