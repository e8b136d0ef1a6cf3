// Package scene defines the value model of a vector scene:
// shapes with compact path encodings, colors and gradients,
// and the groups assigning colors to shapes.
//
// Scenes are plain data: they are built by a producer (see Decode),
// then read by serializers. The rescale functions are the only mutators.
package scene

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/vecsvg/svgpath"
)

var (
	// ErrUnknownShape is returned for a shape outside the closed set
	// of shape kinds (in practice, a nil shape).
	ErrUnknownShape = errors.New("unknown shape kind")
	// ErrUnknownColor is returned for a color outside the closed set
	// of color kinds (in practice, a nil pointer).
	ErrUnknownColor = errors.New("unknown color kind")
	// ErrDimensionMismatch is returned when parallel sequences
	// (such as gradient offsets and stop colors) have different lengths.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrShapeID is returned for a group referencing a missing shape.
	ErrShapeID = errors.New("shape id out of range")
)

func unknownShape(s Shape) error {
	return fmt.Errorf("%w: %T", ErrUnknownShape, s)
}

// ShapeGroup assigns a fill and a stroke color to an ordered
// list of shapes, referenced by their index in Scene.Shapes.
// A nil color means no fill (or no stroke).
type ShapeGroup struct {
	ShapeIDs []int
	Fill     Color
	Stroke   Color
}

// Scene is a canvas with its shapes and groups. The order
// of the groups defines the drawing order.
type Scene struct {
	Width, Height float64
	Shapes        []Shape
	Groups        []ShapeGroup
}

// MaxSide returns max(Width, Height).
func (s *Scene) MaxSide() float64 {
	if s.Width > s.Height {
		return s.Width
	}
	return s.Height
}

// Clone returns a deep copy of the scene, so that
// the copy may be rescaled without affecting `s`.
func (s *Scene) Clone() *Scene {
	out := &Scene{
		Width:  s.Width,
		Height: s.Height,
		Shapes: make([]Shape, len(s.Shapes)),
		Groups: make([]ShapeGroup, len(s.Groups)),
	}
	for i, sh := range s.Shapes {
		if !isNilShape(sh) {
			out.Shapes[i] = sh.clone()
		}
	}
	for i, g := range s.Groups {
		out.Groups[i] = ShapeGroup{
			ShapeIDs: append([]int(nil), g.ShapeIDs...),
			Fill:     cloneColor(g.Fill),
			Stroke:   cloneColor(g.Stroke),
		}
	}
	return out
}

func cloneColor(c Color) Color {
	if isNilColor(c) {
		return nil
	}
	return c.clone()
}

func isNilShape(s Shape) bool {
	switch s := s.(type) {
	case *Path:
		return s == nil
	case *Polygon:
		return s == nil
	case *Circle:
		return s == nil
	case *Ellipse:
		return s == nil
	case *Rect:
		return s == nil
	}
	return true
}

func isNilColor(c Color) bool {
	switch c := c.(type) {
	case *SolidColor:
		return c == nil
	case *LinearGradient:
		return c == nil
	case *RadialGradient:
		return c == nil
	}
	return true
}

// CheckShape reports the integrity errors of one shape:
// unknown kind or malformed path encoding.
func CheckShape(sh Shape) error {
	if isNilShape(sh) {
		return unknownShape(sh)
	}
	if p, ok := sh.(*Path); ok {
		return svgpath.Check(len(p.Points), p.NumControlPoints)
	}
	return nil
}

// Validate checks the integrity of the scene: every shape is
// of a known kind with a well formed encoding, every group references
// existing shapes and carries consistent gradients.
// The returned error wraps one of ErrUnknownShape, ErrUnknownColor,
// ErrShapeID, ErrDimensionMismatch or svgpath.ErrMalformedPath.
func (s *Scene) Validate() error {
	for i, sh := range s.Shapes {
		if err := CheckShape(sh); err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
	}
	for i, g := range s.Groups {
		for _, id := range g.ShapeIDs {
			if id < 0 || id >= len(s.Shapes) {
				return fmt.Errorf("group %d: %w: %d (%d shapes)", i, ErrShapeID, id, len(s.Shapes))
			}
		}
		if err := checkGroupColor(g.Fill); err != nil {
			return fmt.Errorf("group %d fill: %w", i, err)
		}
		if err := checkGroupColor(g.Stroke); err != nil {
			return fmt.Errorf("group %d stroke: %w", i, err)
		}
	}
	return nil
}

func checkGroupColor(c Color) error {
	if c != nil && isNilColor(c) {
		return fmt.Errorf("%w: %T", ErrUnknownColor, c)
	}
	return checkColor(c)
}
