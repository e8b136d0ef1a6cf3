package scene

import "fmt"

// RGBA is a color with channels normally in [0, 1].
// Values outside this range are kept as is.
type RGBA struct {
	R, G, B, A float64
}

// Color is one of *SolidColor, *LinearGradient or *RadialGradient.
type Color interface {
	isColor()
	clone() Color
}

// SolidColor is a plain RGBA color.
type SolidColor struct {
	RGBA
}

// GradStop represents a stop of a gradient.
type GradStop struct {
	Offset float64
	Color  RGBA
}

// LinearGradient varies along the axis from Begin to End.
type LinearGradient struct {
	Begin, End Point
	Offsets    []float64 // non-decreasing by convention
	StopColors []RGBA    // same length as Offsets
	Units      string    // passed through as gradientUnits, if not empty
}

// RadialGradient varies from Center, with elliptical radii.
type RadialGradient struct {
	Center     Point
	Radius     Point // radii along x and y
	Offsets    []float64
	StopColors []RGBA
	Units      string
}

func (*SolidColor) isColor()     {}
func (*LinearGradient) isColor() {}
func (*RadialGradient) isColor() {}

func (c *SolidColor) clone() Color { cp := *c; return &cp }

func (g *LinearGradient) clone() Color {
	cp := *g
	cp.Offsets = append([]float64(nil), g.Offsets...)
	cp.StopColors = append([]RGBA(nil), g.StopColors...)
	return &cp
}

func (g *RadialGradient) clone() Color {
	cp := *g
	cp.Offsets = append([]float64(nil), g.Offsets...)
	cp.StopColors = append([]RGBA(nil), g.StopColors...)
	return &cp
}

func zipStops(offsets []float64, colors []RGBA) ([]GradStop, error) {
	if len(offsets) != len(colors) {
		return nil, fmt.Errorf("%w: %d offsets for %d stop colors", ErrDimensionMismatch, len(offsets), len(colors))
	}
	out := make([]GradStop, len(offsets))
	for i, o := range offsets {
		out[i] = GradStop{Offset: o, Color: colors[i]}
	}
	return out, nil
}

// Stops pairs offsets and stop colors, or returns an error
// wrapping ErrDimensionMismatch.
func (g *LinearGradient) Stops() ([]GradStop, error) { return zipStops(g.Offsets, g.StopColors) }

// Stops pairs offsets and stop colors, or returns an error
// wrapping ErrDimensionMismatch.
func (g *RadialGradient) Stops() ([]GradStop, error) { return zipStops(g.Offsets, g.StopColors) }

// checkColor reports the integrity errors of a (possibly nil) color.
func checkColor(c Color) error {
	switch c := c.(type) {
	case nil, *SolidColor:
		return nil
	case *LinearGradient:
		_, err := c.Stops()
		return err
	case *RadialGradient:
		_, err := c.Stops()
		return err
	default:
		return fmt.Errorf("%w: %T", ErrUnknownColor, c)
	}
}
