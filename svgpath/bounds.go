package svgpath

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// compute the exact bounding box of a path: each segment is bounded
// by its end points and the points where its derivative vanishes

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) vec.Vec2
}

type line [2]vec.Vec2

func (l line) criticalPoints() (tX, tY []float64) { return nil, nil }

func (l line) evaluateCurve(t float64) vec.Vec2 {
	return vec.Vec2{X: bezierLine(l[0].X, l[1].X, t), Y: bezierLine(l[0].Y, l[1].Y, t)}
}

type quadBezier [3]vec.Vec2

// derivative as at + b where a,b :
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// handle the case where a = 0
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) vec.Vec2 { return QuadAt(cu[0], cu[1], cu[2], t) }

type cubicBezier [4]vec.Vec2

// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
// taken as aX^2 + bX + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		// simple line
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) vec.Vec2 {
	return CubicAt(cu[0], cu[1], cu[2], cu[3], t)
}

// EmptyBounds is the neutral element of Union.
var EmptyBounds = rect.Rect{
	LLx: math.Inf(1), LLy: math.Inf(1),
	URx: math.Inf(-1), URy: math.Inf(-1),
}

// IsEmpty returns true if `r` contains no point.
func IsEmpty(r rect.Rect) bool { return r.LLx > r.URx || r.LLy > r.URy }

// Union returns the smallest rectangle containing both `a` and `b`.
func Union(a, b rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: math.Min(a.LLx, b.LLx), LLy: math.Min(a.LLy, b.LLy),
		URx: math.Max(a.URx, b.URx), URy: math.Max(a.URy, b.URy),
	}
}

// ExtendPoint returns the smallest rectangle containing `r` and `p`.
func ExtendPoint(r rect.Rect, p vec.Vec2) rect.Rect {
	return Union(r, rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y})
}

func boundingBox(curve bezier) rect.Rect {
	resX, resY := curve.criticalPoints()
	bbox := EmptyBounds
	// add begin and end point
	for _, t := range append(append(resX, 0, 1), resY...) {
		// filter invalid value
		if !(0 <= t && t <= 1) {
			continue
		}
		bbox = ExtendPoint(bbox, curve.evaluateCurve(t))
	}
	return bbox
}

// Bounds returns the exact bounding box of the curves traced by the path,
// or EmptyBounds for an empty path.
func (p Path) Bounds() rect.Rect {
	bbox := EmptyBounds
	var current vec.Vec2
	for _, op := range p {
		var curve bezier
		switch op := op.(type) {
		case MoveTo:
			bbox = ExtendPoint(bbox, vec.Vec2(op))
		case LineTo:
			curve = line{current, vec.Vec2(op)}
		case QuadTo:
			curve = quadBezier{current, op[0], op[1]}
		case CubicTo:
			curve = cubicBezier{current, op[0], op[1], op[2]}
		}
		if curve != nil {
			bbox = Union(bbox, boundingBox(curve))
		}
		current = op.end()
	}
	return bbox
}
