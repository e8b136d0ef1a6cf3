package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleScene() *Scene {
	return &Scene{
		Width:  200,
		Height: 100,
		Shapes: []Shape{
			&Path{
				Points:           []Point{{X: 10, Y: 20}, {X: 30, Y: 40}, {X: 50, Y: 20}, {X: 70, Y: 80}},
				NumControlPoints: []int{1, 0, 0},
				StrokeWidth:      2,
			},
			&Polygon{Points: []Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 50}}, StrokeWidth: 1},
			&Circle{Center: Point{X: 40, Y: 60}, Radius: 10, StrokeWidth: 0.5},
			&Ellipse{Center: Point{X: 120, Y: 40}, Radius: Point{X: 20, Y: 8}, StrokeWidth: 3},
			&Rect{PMin: Point{X: 20, Y: 10}, PMax: Point{X: 180, Y: 90}, StrokeWidth: 4},
		},
		Groups: []ShapeGroup{
			{
				ShapeIDs: []int{0, 1},
				Fill: &LinearGradient{
					Begin: Point{X: 0, Y: 0}, End: Point{X: 200, Y: 100},
					Offsets:    []float64{0, 1},
					StopColors: []RGBA{{1, 0, 0, 1}, {0, 0, 1, 1}},
				},
				Stroke: &SolidColor{RGBA{0, 0, 0, 1}},
			},
			{
				ShapeIDs: []int{2, 3, 4},
				Fill: &RadialGradient{
					Center: Point{X: 100, Y: 50}, Radius: Point{X: 40, Y: 20},
					Offsets:    []float64{0, 0.5},
					StopColors: []RGBA{{1, 1, 1, 1}, {0, 0, 0, 0.5}},
				},
			},
		},
	}
}

// coordinates lists every coordinate-bearing scalar of the scene,
// in a deterministic order.
func coordinates(s *Scene) []float64 {
	var out []float64
	pts := func(ps ...Point) {
		for _, p := range ps {
			out = append(out, p.X, p.Y)
		}
	}
	for _, sh := range s.Shapes {
		switch sh := sh.(type) {
		case *Path:
			pts(sh.Points...)
			out = append(out, sh.StrokeWidth)
		case *Polygon:
			pts(sh.Points...)
			out = append(out, sh.StrokeWidth)
		case *Circle:
			pts(sh.Center)
			out = append(out, sh.Radius, sh.StrokeWidth)
		case *Ellipse:
			pts(sh.Center, sh.Radius)
			out = append(out, sh.StrokeWidth)
		case *Rect:
			pts(sh.PMin, sh.PMax)
			out = append(out, sh.StrokeWidth)
		}
	}
	for _, g := range s.Groups {
		for _, c := range []Color{g.Fill, g.Stroke} {
			switch c := c.(type) {
			case *LinearGradient:
				pts(c.Begin, c.End)
			case *RadialGradient:
				pts(c.Center, c.Radius)
			}
		}
	}
	return out
}

func TestRescale(t *testing.T) {
	s := sampleScene()
	before := coordinates(s)

	require.NoError(t, Rescale(s.Shapes, s.Groups, 3))

	after := coordinates(s)
	require.Len(t, after, len(before))
	for i := range before {
		assert.Equal(t, 3*before[i], after[i])
	}

	// topology is untouched
	assert.Equal(t, []int{1, 0, 0}, s.Shapes[0].(*Path).NumControlPoints)
	assert.Equal(t, []int{0, 1}, s.Groups[0].ShapeIDs)
	assert.Equal(t, []int{2, 3, 4}, s.Groups[1].ShapeIDs)
	// solid colors and stops carry no geometry
	assert.Equal(t, &SolidColor{RGBA{0, 0, 0, 1}}, s.Groups[0].Stroke)
	assert.Equal(t, []float64{0, 1}, s.Groups[0].Fill.(*LinearGradient).Offsets)
}

func TestRescaleComposition(t *testing.T) {
	for _, factors := range [][2]float64{{2, 3}, {0.1, 7}, {1.0 / 3, 3}, {1e-3, 250}} {
		a, b := factors[0], factors[1]

		twice := sampleScene()
		require.NoError(t, Rescale(twice.Shapes, twice.Groups, a))
		require.NoError(t, Rescale(twice.Shapes, twice.Groups, b))

		once := sampleScene()
		require.NoError(t, Rescale(once.Shapes, once.Groups, a*b))

		exp, got := coordinates(once), coordinates(twice)
		for i := range exp {
			assert.InDelta(t, exp[i], got[i], 1e-9, "factors %v, coordinate %d", factors, i)
		}
	}
}

func TestNormalize(t *testing.T) {
	s := sampleScene()
	before := coordinates(s)

	w, h, err := Normalize(s.Shapes, s.Groups, 200, 100)
	require.NoError(t, err)
	assert.Equal(t, 1.0, w)
	assert.Equal(t, 0.5, h)

	after := coordinates(s)
	for i, c := range before {
		assert.InDelta(t, c/200, after[i], 1e-12)
	}

	_, _, err = Normalize(s.Shapes, s.Groups, 0, 0)
	assert.Error(t, err)
}

func TestRescaleSize(t *testing.T) {
	s := sampleScene()
	w, h, err := RescaleSize(s.Shapes, s.Groups, 0.5, s.Width, s.Height)
	require.NoError(t, err)
	assert.Equal(t, 100.0, w)
	assert.Equal(t, 50.0, h)
}

func TestRescaleInvalid(t *testing.T) {
	s := sampleScene()
	s.Groups[0].Fill.(*LinearGradient).Offsets = []float64{0, 0.5, 1}
	before := coordinates(s)

	err := Rescale(s.Shapes, s.Groups, 2)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
	// nothing was scaled
	assert.Equal(t, before, coordinates(s))

	s = sampleScene()
	s.Shapes = append(s.Shapes, nil)
	err = Rescale(s.Shapes, s.Groups, 2)
	assert.True(t, errors.Is(err, ErrUnknownShape))

	var nilCircle *Circle
	err = Rescale([]Shape{nilCircle}, nil, 2)
	assert.True(t, errors.Is(err, ErrUnknownShape))
}

func TestPureVariants(t *testing.T) {
	s := sampleScene()
	before := coordinates(s)

	n, err := Normalized(s)
	require.NoError(t, err)
	assert.Equal(t, 1.0, n.Width)
	assert.Equal(t, 0.5, n.Height)
	assert.Equal(t, before, coordinates(s), "the input scene is not modified")

	r, err := Rescaled(s, 2)
	require.NoError(t, err)
	assert.Equal(t, 400.0, r.Width)
	assert.Equal(t, 200.0, r.Height)
	for i, c := range before {
		assert.Equal(t, 2*c, coordinates(r)[i])
	}
	assert.Equal(t, before, coordinates(s))
}
