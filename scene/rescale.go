package scene

import "fmt"

// Rescale multiplies, in place, every coordinate-bearing field by `factor`:
// stroke widths, path and polygon points, circle and ellipse centers and
// radii, rect corners, and the geometry of the groups' gradients.
// Encodings, shape ids and group membership are left untouched.
//
// An error wrapping ErrUnknownShape or ErrDimensionMismatch is returned
// before anything is modified if the data is inconsistent.
func Rescale(shapes []Shape, groups []ShapeGroup, factor float64) error {
	for i, sh := range shapes {
		if isNilShape(sh) {
			return fmt.Errorf("shape %d: %w", i, unknownShape(sh))
		}
	}
	for i, g := range groups {
		if err := checkGroupColor(g.Fill); err != nil {
			return fmt.Errorf("group %d fill: %w", i, err)
		}
		if err := checkGroupColor(g.Stroke); err != nil {
			return fmt.Errorf("group %d stroke: %w", i, err)
		}
	}

	for _, sh := range shapes {
		rescaleShape(sh, factor)
	}
	for _, g := range groups {
		rescaleColor(g.Fill, factor)
		rescaleColor(g.Stroke, factor)
	}
	return nil
}

func scalePoints(points []Point, factor float64) {
	for i, p := range points {
		points[i] = p.Mul(factor)
	}
}

func rescaleShape(sh Shape, factor float64) {
	switch sh := sh.(type) {
	case *Path:
		sh.StrokeWidth *= factor
		scalePoints(sh.Points, factor)
	case *Polygon:
		sh.StrokeWidth *= factor
		scalePoints(sh.Points, factor)
	case *Circle:
		sh.StrokeWidth *= factor
		sh.Center = sh.Center.Mul(factor)
		sh.Radius *= factor
	case *Ellipse:
		sh.StrokeWidth *= factor
		sh.Center = sh.Center.Mul(factor)
		sh.Radius = sh.Radius.Mul(factor)
	case *Rect:
		sh.StrokeWidth *= factor
		sh.PMin = sh.PMin.Mul(factor)
		sh.PMax = sh.PMax.Mul(factor)
	}
}

// solid colors carry no geometry
func rescaleColor(c Color, factor float64) {
	switch c := c.(type) {
	case *LinearGradient:
		c.Begin = c.Begin.Mul(factor)
		c.End = c.End.Mul(factor)
	case *RadialGradient:
		c.Center = c.Center.Mul(factor)
		c.Radius = c.Radius.Mul(factor)
	}
}

// RescaleSize is Rescale, also returning the scaled canvas dimensions.
func RescaleSize(shapes []Shape, groups []ShapeGroup, factor, width, height float64) (newWidth, newHeight float64, err error) {
	if err = Rescale(shapes, groups, factor); err != nil {
		return width, height, err
	}
	return width * factor, height * factor, nil
}

// Normalize rescales in place by 1 / max(width, height), mapping the canvas
// into the unit square, and returns the new canvas dimensions.
func Normalize(shapes []Shape, groups []ShapeGroup, width, height float64) (newWidth, newHeight float64, err error) {
	maxSide := width
	if height > maxSide {
		maxSide = height
	}
	if !(maxSide > 0) {
		return width, height, fmt.Errorf("invalid canvas size %g x %g", width, height)
	}
	return RescaleSize(shapes, groups, 1/maxSide, width, height)
}

// Rescaled returns a rescaled copy of `s`, including its dimensions.
// `s` is not modified.
func Rescaled(s *Scene, factor float64) (*Scene, error) {
	out := s.Clone()
	var err error
	out.Width, out.Height, err = RescaleSize(out.Shapes, out.Groups, factor, s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Normalized returns a copy of `s` mapped into the unit square.
// `s` is not modified.
func Normalized(s *Scene) (*Scene, error) {
	out := s.Clone()
	var err error
	out.Width, out.Height, err = Normalize(out.Shapes, out.Groups, s.Width, s.Height)
	if err != nil {
		return nil, err
	}
	return out, nil
}
