package svgpath

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/vec"
)

// Segment degrees, as stored in the compact encoding.
const (
	Line      = 0
	Quadratic = 1
	Cubic     = 2
)

// ErrMalformedPath is returned (wrapped) when the compact encoding
// of a path is inconsistent.
var ErrMalformedPath = errors.New("malformed path encoding")

// SegmentError reports the segment of the encoding which
// could not be decoded.
type SegmentError struct {
	Segment int // index in the degree list
	Degree  int
	Need    int // number of points required up to this segment
	Have    int // number of points in the buffer
}

func (e *SegmentError) Error() string {
	if e.Degree < Line || e.Degree > Cubic {
		return fmt.Sprintf("segment %d: invalid degree %d", e.Segment, e.Degree)
	}
	return fmt.Sprintf("segment %d: needs %d points, buffer has %d", e.Segment, e.Need, e.Have)
}

func (e *SegmentError) Unwrap() error { return ErrMalformedPath }

// Check verifies that a point buffer of length `numPoints` can
// hold the segment run `degrees`: every degree is in {0,1,2} and the
// segments consume at most `numPoints` points, the last end point
// being allowed to wrap back to the first point.
func Check(numPoints int, degrees []int) error {
	if numPoints == 0 {
		return fmt.Errorf("%w: empty point buffer", ErrMalformedPath)
	}
	consumed := 0
	for j, d := range degrees {
		if d < Line || d > Cubic {
			return &SegmentError{Segment: j, Degree: d, Have: numPoints}
		}
		consumed += d + 1
		if consumed > numPoints {
			return &SegmentError{Segment: j, Degree: d, Need: consumed, Have: numPoints}
		}
	}
	return nil
}

// Decode expands the compact encoding into explicit operations.
// The path starts at points[0]; each segment of degree d consumes
// d+1 points, and the end point index wraps modulo len(points) so that
// the last segment may close on points[0].
// When `cubicOnly` is true, lines and quadratics are elevated to cubics.
func Decode(points []vec.Vec2, degrees []int, cubicOnly bool) (Path, error) {
	if err := Check(len(points), degrees); err != nil {
		return nil, err
	}
	n := len(points)
	out := make(Path, 0, len(degrees)+1)
	out.Start(points[0])
	pointID := 1
	for _, d := range degrees {
		current := points[pointID-1]
		switch d {
		case Line:
			end := points[pointID%n]
			if cubicOnly {
				c1, c2 := ElevateLine(current, end)
				out.CubeBezier(c1, c2, end)
			} else {
				out.Line(end)
			}
		case Quadratic:
			ctrl, end := points[pointID], points[(pointID+1)%n]
			if cubicOnly {
				c1, c2 := ElevateQuad(current, ctrl, end)
				out.CubeBezier(c1, c2, end)
			} else {
				out.QuadBezier(ctrl, end)
			}
		case Cubic:
			out.CubeBezier(points[pointID], points[pointID+1], points[(pointID+2)%n])
		}
		pointID += d + 1
	}
	return out, nil
}

// Format decodes the encoding and returns its SVG path data.
func Format(points []vec.Vec2, degrees []int, cubicOnly bool) (string, error) {
	p, err := Decode(points, degrees, cubicOnly)
	if err != nil {
		return "", err
	}
	return p.ToSVGPath(), nil
}
