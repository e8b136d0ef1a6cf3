package scene

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/rect"

	"github.com/benoitkugler/vecsvg/svgpath"
)

func TestValidate(t *testing.T) {
	require.NoError(t, sampleScene().Validate())

	var nilRect *Rect
	var nilGradient *LinearGradient
	tests := []struct {
		name   string
		modify func(s *Scene)
		target error
	}{
		{"nil shape", func(s *Scene) { s.Shapes[1] = nil }, ErrUnknownShape},
		{"typed nil shape", func(s *Scene) { s.Shapes[4] = nilRect }, ErrUnknownShape},
		{"id too large", func(s *Scene) { s.Groups[1].ShapeIDs = append(s.Groups[1].ShapeIDs, 5) }, ErrShapeID},
		{"negative id", func(s *Scene) { s.Groups[0].ShapeIDs[0] = -1 }, ErrShapeID},
		{"stops mismatch", func(s *Scene) {
			g := s.Groups[1].Fill.(*RadialGradient)
			g.StopColors = g.StopColors[:1]
		}, ErrDimensionMismatch},
		{"typed nil color", func(s *Scene) { s.Groups[0].Stroke = nilGradient }, ErrUnknownColor},
		{"bad degree", func(s *Scene) { s.Shapes[0].(*Path).NumControlPoints = []int{3} }, svgpath.ErrMalformedPath},
		{"short buffer", func(s *Scene) { s.Shapes[0].(*Path).NumControlPoints = []int{2, 2} }, svgpath.ErrMalformedPath},
		{"empty path", func(s *Scene) { s.Shapes[0].(*Path).Points = nil }, svgpath.ErrMalformedPath},
	}
	for _, tt := range tests {
		s := sampleScene()
		tt.modify(s)
		err := s.Validate()
		assert.True(t, errors.Is(err, tt.target), "%s: got %v", tt.name, err)
	}
}

func TestCheckShapeSegment(t *testing.T) {
	err := CheckShape(&Path{Points: make([]Point, 3), NumControlPoints: []int{0, 2}})
	var se *svgpath.SegmentError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Segment)
	assert.Equal(t, 4, se.Need)
	assert.Equal(t, 3, se.Have)
}

func TestClone(t *testing.T) {
	s := sampleScene()
	cp := s.Clone()
	assert.Equal(t, s, cp)

	cp.Shapes[0].(*Path).Points[0] = Point{X: -1, Y: -1}
	cp.Shapes[2].(*Circle).Radius = 99
	cp.Groups[0].ShapeIDs[0] = 4
	cp.Groups[0].Fill.(*LinearGradient).StopColors[0] = RGBA{}
	cp.Groups[0].Stroke.(*SolidColor).A = 0

	assert.Equal(t, sampleScene(), s)
}

func TestStrokeWidth(t *testing.T) {
	s := sampleScene()
	var widths []float64
	for _, sh := range s.Shapes {
		w, err := StrokeWidth(sh)
		require.NoError(t, err)
		widths = append(widths, w)
	}
	assert.Equal(t, []float64{2, 1, 0.5, 3, 4}, widths)

	_, err := StrokeWidth(nil)
	assert.True(t, errors.Is(err, ErrUnknownShape))
}

func TestStops(t *testing.T) {
	g := sampleScene().Groups[0].Fill.(*LinearGradient)
	stops, err := g.Stops()
	require.NoError(t, err)
	assert.Equal(t, []GradStop{
		{Offset: 0, Color: RGBA{1, 0, 0, 1}},
		{Offset: 1, Color: RGBA{0, 0, 1, 1}},
	}, stops)
}

func TestBounds(t *testing.T) {
	tests := []struct {
		shape Shape
		exp   rect.Rect
	}{
		{&Circle{Center: Point{X: 1, Y: 2}, Radius: 1}, rect.Rect{LLx: 0, LLy: 1, URx: 2, URy: 3}},
		{&Ellipse{Center: Point{X: 1, Y: 2}, Radius: Point{X: 3, Y: 1}}, rect.Rect{LLx: -2, LLy: 1, URx: 4, URy: 3}},
		{&Rect{PMin: Point{X: 1, Y: 2}, PMax: Point{X: 3, Y: 5}}, rect.Rect{LLx: 1, LLy: 2, URx: 3, URy: 5}},
		{&Polygon{Points: []Point{{X: 4, Y: 0}, {X: 0, Y: 4}, {X: 2, Y: -1}}}, rect.Rect{LLx: 0, LLy: -1, URx: 4, URy: 4}},
		// the curve stays below its control point
		{&Path{Points: []Point{{X: 0, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: 0}}, NumControlPoints: []int{1}}, rect.Rect{LLx: 0, LLy: 0, URx: 2, URy: 1}},
	}
	for _, tt := range tests {
		got, err := ShapeBounds(tt.shape)
		require.NoError(t, err)
		assert.InDelta(t, tt.exp.LLx, got.LLx, 1e-12)
		assert.InDelta(t, tt.exp.LLy, got.LLy, 1e-12)
		assert.InDelta(t, tt.exp.URx, got.URx, 1e-12)
		assert.InDelta(t, tt.exp.URy, got.URy, 1e-12)
	}

	s := sampleScene()
	b, err := s.Bounds()
	require.NoError(t, err)
	assert.Equal(t, rect.Rect{LLx: 0, LLy: 0, URx: 180, URy: 90}, b)

	ok, err := s.Fits()
	require.NoError(t, err)
	assert.True(t, ok)

	s.Shapes = append(s.Shapes, &Circle{Center: Point{X: 195, Y: 50}, Radius: 10})
	ok, err = s.Fits()
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = (&Scene{Width: 1, Height: 1}).Fits()
	require.NoError(t, err)
	assert.True(t, ok)
}
