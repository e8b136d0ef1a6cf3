package scene

import (
	"seehuhn.de/go/geom/rect"

	"github.com/benoitkugler/vecsvg/svgpath"
)

// ShapeBounds returns the geometric bounding box of a shape,
// ignoring its stroke width. Paths are bounded exactly, not by
// their control points.
func ShapeBounds(sh Shape) (rect.Rect, error) {
	bbox := svgpath.EmptyBounds
	switch sh := sh.(type) {
	case *Path:
		if sh == nil {
			return bbox, unknownShape(sh)
		}
		p, err := svgpath.Decode(sh.Points, sh.NumControlPoints, false)
		if err != nil {
			return bbox, err
		}
		return p.Bounds(), nil
	case *Polygon:
		if sh == nil {
			return bbox, unknownShape(sh)
		}
		for _, p := range sh.Points {
			bbox = svgpath.ExtendPoint(bbox, p)
		}
	case *Circle:
		if sh == nil {
			return bbox, unknownShape(sh)
		}
		r := Point{X: sh.Radius, Y: sh.Radius}
		bbox = svgpath.ExtendPoint(bbox, sh.Center.Sub(r))
		bbox = svgpath.ExtendPoint(bbox, sh.Center.Add(r))
	case *Ellipse:
		if sh == nil {
			return bbox, unknownShape(sh)
		}
		bbox = svgpath.ExtendPoint(bbox, sh.Center.Sub(sh.Radius))
		bbox = svgpath.ExtendPoint(bbox, sh.Center.Add(sh.Radius))
	case *Rect:
		if sh == nil {
			return bbox, unknownShape(sh)
		}
		bbox = svgpath.ExtendPoint(bbox, sh.PMin)
		bbox = svgpath.ExtendPoint(bbox, sh.PMax)
	default:
		return bbox, unknownShape(sh)
	}
	return bbox, nil
}

// Bounds returns the union of the bounding boxes of the shapes,
// or svgpath.EmptyBounds for a scene without shapes.
func (s *Scene) Bounds() (rect.Rect, error) {
	bbox := svgpath.EmptyBounds
	for _, sh := range s.Shapes {
		b, err := ShapeBounds(sh)
		if err != nil {
			return bbox, err
		}
		bbox = svgpath.Union(bbox, b)
	}
	return bbox, nil
}

// Fits returns true if the bounding box of the shapes lies
// inside the canvas [0, Width] x [0, Height].
// Normalization expects this property.
func (s *Scene) Fits() (bool, error) {
	b, err := s.Bounds()
	if err != nil {
		return false, err
	}
	if svgpath.IsEmpty(b) {
		return true, nil
	}
	return b.LLx >= 0 && b.LLy >= 0 && b.URx <= s.Width && b.URy <= s.Height, nil
}
