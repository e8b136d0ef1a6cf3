package scene

import (
	"seehuhn.de/go/geom/vec"
)

// Point is a 2D coordinate.
type Point = vec.Vec2

// Shape is one of *Path, *Polygon, *Circle, *Ellipse or *Rect.
// Every shape carries a stroke width, which is the half width
// of the drawn stroke.
type Shape interface {
	isShape()
	clone() Shape
}

// Path is a piecewise Bézier curve, in compact form:
// segment j has degree NumControlPoints[j] (0: line, 1: quadratic, 2: cubic)
// and consumes NumControlPoints[j]+1 points, the last end point possibly
// wrapping back to Points[0].
type Path struct {
	Points           []Point
	NumControlPoints []int
	StrokeWidth      float64
}

// Polygon is implicitly closed, with straight edges.
type Polygon struct {
	Points      []Point
	StrokeWidth float64
}

type Circle struct {
	Center      Point
	Radius      float64
	StrokeWidth float64
}

// Ellipse is axis aligned, with radii Radius.X and Radius.Y.
type Ellipse struct {
	Center      Point
	Radius      Point
	StrokeWidth float64
}

// Rect is axis aligned; PMax is componentwise greater than PMin.
type Rect struct {
	PMin, PMax  Point
	StrokeWidth float64
}

func (*Path) isShape()    {}
func (*Polygon) isShape() {}
func (*Circle) isShape()  {}
func (*Ellipse) isShape() {}
func (*Rect) isShape()    {}

func (s *Path) clone() Shape {
	cp := *s
	cp.Points = append([]Point(nil), s.Points...)
	cp.NumControlPoints = append([]int(nil), s.NumControlPoints...)
	return &cp
}

func (s *Polygon) clone() Shape {
	cp := *s
	cp.Points = append([]Point(nil), s.Points...)
	return &cp
}

func (s *Circle) clone() Shape  { cp := *s; return &cp }
func (s *Ellipse) clone() Shape { cp := *s; return &cp }
func (s *Rect) clone() Shape    { cp := *s; return &cp }

// StrokeWidth returns the stroke width of the shape, or an error
// wrapping ErrUnknownShape.
func StrokeWidth(s Shape) (float64, error) {
	switch s := s.(type) {
	case *Path:
		return s.StrokeWidth, nil
	case *Polygon:
		return s.StrokeWidth, nil
	case *Circle:
		return s.StrokeWidth, nil
	case *Ellipse:
		return s.StrokeWidth, nil
	case *Rect:
		return s.StrokeWidth, nil
	default:
		return 0, unknownShape(s)
	}
}
