// Implements an explicit representation of
// piecewise Bézier paths, decoded from the compact
// point/segment-degree encoding, and their SVG path data.
package svgpath

import (
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
)

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
	// end returns the current point after the operation
	end() vec.Vec2
}

type MoveTo vec.Vec2

type LineTo vec.Vec2

// QuadTo stores the control point then the end point.
type QuadTo [2]vec.Vec2

// CubicTo stores the two control points then the end point.
type CubicTo [3]vec.Vec2

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }

func (op MoveTo) end() vec.Vec2  { return vec.Vec2(op) }
func (op LineTo) end() vec.Vec2  { return vec.Vec2(op) }
func (op QuadTo) end() vec.Vec2  { return op[1] }
func (op CubicTo) end() vec.Vec2 { return op[2] }

// Path describes a sequence of basic SVG operations.
// A decoded path always starts with a MoveTo.
type Path []Operation

// FormatFloat returns the shortest decimal text which parses back
// to exactly v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func appendPoint(b *strings.Builder, p vec.Vec2) {
	b.WriteByte(' ')
	b.WriteString(FormatFloat(p.X))
	b.WriteByte(' ')
	b.WriteString(FormatFloat(p.Y))
}

// ToSVGPath returns the path data string, with absolute commands
// separated by spaces, such as "M 0 0 L 1 0 C 1 1 0 1 0 0".
func (p Path) ToSVGPath() string {
	var b strings.Builder
	for i, op := range p {
		if i != 0 {
			b.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			b.WriteByte('M')
			appendPoint(&b, vec.Vec2(op))
		case LineTo:
			b.WriteByte('L')
			appendPoint(&b, vec.Vec2(op))
		case QuadTo:
			b.WriteByte('Q')
			appendPoint(&b, op[0])
			appendPoint(&b, op[1])
		case CubicTo:
			b.WriteByte('C')
			appendPoint(&b, op[0])
			appendPoint(&b, op[1])
			appendPoint(&b, op[2])
		}
	}
	return b.String()
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a vec.Vec2) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b vec.Vec2) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c vec.Vec2) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d vec.Vec2) {
	*p = append(*p, CubicTo{b, c, d})
}

// ToCubics returns a copy of the path where every line and quadratic
// segment is replaced by the cubic tracing the same curve.
func (p Path) ToCubics() Path {
	out := make(Path, 0, len(p))
	var current vec.Vec2
	for _, op := range p {
		switch op := op.(type) {
		case LineTo:
			c1, c2 := ElevateLine(current, vec.Vec2(op))
			out = append(out, CubicTo{c1, c2, vec.Vec2(op)})
		case QuadTo:
			c1, c2 := ElevateQuad(current, op[0], op[1])
			out = append(out, CubicTo{c1, c2, op[1]})
		default:
			out = append(out, op)
		}
		current = op.end()
	}
	return out
}
