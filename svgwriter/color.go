package svgwriter

import (
	"errors"
	"fmt"
	"math"

	"github.com/benoitkugler/vecsvg/scene"
	"github.com/benoitkugler/vecsvg/svgdoc"
	"github.com/benoitkugler/vecsvg/svgpath"
)

// ErrUnsupportedColor is returned (wrapped) for colors
// which have no SVG output, namely radial gradients.
var ErrUnsupportedColor = errors.New("unsupported color kind")

// Paint is a color resolved for one target (fill or stroke).
type Paint struct {
	// Value is the attribute value, such as "rgb(255, 0, 0)"
	// or "url(#shape_0_fill)".
	Value string
	// Opacity is set for solid colors only.
	Opacity string
	// Def is the gradient definition referenced by Value, or nil.
	Def *svgdoc.Element
}

// channel maps [0, 1] to [0, 255], without clamping.
func channel(v float64) int { return int(math.Floor(255 * v)) }

func formatRGB(c scene.RGBA) string {
	return fmt.Sprintf("rgb(%d, %d, %d)", channel(c.R), channel(c.G), channel(c.B))
}

func attr(name string, v float64) svgdoc.Attr {
	return svgdoc.Attr{Name: name, Value: svgpath.FormatFloat(v)}
}

// ResolveColor converts `c` to its SVG form. Gradients are
// defined with the given `id`.
// A radial gradient returns an error wrapping ErrUnsupportedColor,
// and a nil color a zero Paint.
func ResolveColor(c scene.Color, id string) (Paint, error) {
	switch c := c.(type) {
	case nil:
		return Paint{}, nil
	case *scene.SolidColor:
		return Paint{Value: formatRGB(c.RGBA), Opacity: svgpath.FormatFloat(c.A)}, nil
	case *scene.LinearGradient:
		stops, err := c.Stops()
		if err != nil {
			return Paint{}, err
		}
		def := svgdoc.NewElement("linearGradient",
			svgdoc.Attr{Name: "id", Value: id},
			attr("x1", c.Begin.X),
			attr("y1", c.Begin.Y),
			attr("x2", c.End.X),
			attr("y2", c.End.Y),
		)
		if c.Units != "" {
			def.Set("gradientUnits", c.Units)
		}
		for _, stop := range stops {
			def.AddChild("stop",
				attr("offset", stop.Offset),
				svgdoc.Attr{Name: "stop-color", Value: formatRGB(stop.Color)},
				attr("stop-opacity", stop.Color.A),
			)
		}
		return Paint{Value: "url(#" + id + ")", Def: def}, nil
	case *scene.RadialGradient:
		return Paint{}, fmt.Errorf("%w: radial gradient %s", ErrUnsupportedColor, id)
	default:
		return Paint{}, fmt.Errorf("%w: %T", scene.ErrUnknownColor, c)
	}
}
