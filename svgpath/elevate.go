package svgpath

import "seehuhn.de/go/geom/vec"

// ElevateLine returns the control points of the cubic
// tracing the segment [p0, p1], at 1/3 and 2/3 of its length.
func ElevateLine(p0, p1 vec.Vec2) (c1, c2 vec.Vec2) {
	d := p1.Sub(p0)
	return p0.Add(d.Mul(1. / 3)), p0.Add(d.Mul(2. / 3))
}

// ElevateQuad returns the control points of the cubic
// tracing the quadratic curve (p0, q, p2).
func ElevateQuad(p0, q, p2 vec.Vec2) (c1, c2 vec.Vec2) {
	return p0.Add(q.Sub(p0).Mul(2. / 3)), p2.Add(q.Sub(p2).Mul(2. / 3))
}

// QuadAt evaluates the quadratic Bézier curve at t.
func QuadAt(p0, p1, p2 vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{X: bezierQuad(p0.X, p1.X, p2.X, t), Y: bezierQuad(p0.Y, p1.Y, p2.Y, t)}
}

// CubicAt evaluates the cubic Bézier curve at t.
func CubicAt(p0, p1, p2, p3 vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{X: bezierCubic(p0.X, p1.X, p2.X, p3.X, t), Y: bezierCubic(p0.Y, p1.Y, p2.Y, p3.Y, t)}
}

func bezierLine(p0, p1, t float64) float64 {
	return (p1-p0)*t + p0
}

// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// Bernstein form
func bezierCubic(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}
