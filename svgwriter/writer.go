// Package svgwriter serializes a scene.Scene to an SVG 1.1 document.
//
// Each shape group is written in order, as one node per shape, except
// for groups made only of paths: they are merged into one path node,
// whose data is the concatenation of the paths, so that the sub-paths
// of a compound shape (such as the holes of a glyph) share their styling.
// Linear gradients are written in the defs section; radial gradients
// are not supported and handled according to Options.ErrorMode.
package svgwriter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benoitkugler/vecsvg/scene"
	"github.com/benoitkugler/vecsvg/svgdoc"
	"github.com/benoitkugler/vecsvg/svgpath"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	gammaID      = "gamma"
)

// Warning is a recoverable issue met while writing a group color.
type Warning struct {
	Group  int
	Target string // "fill" or "stroke"
	Err    error
}

func (w Warning) String() string {
	return fmt.Sprintf("group %d %s: %s", w.Group, w.Target, w.Err)
}

// Result is the document tree of a scene.
type Result struct {
	Root *svgdoc.Element
	// Warnings is empty unless ErrorMode is WarnErrorMode.
	Warnings []Warning
}

// groupPaint stores the resolved colors of a group.
// A color present in the group but skipped has an empty Value.
type groupPaint struct {
	fill, stroke       Paint
	hasFill, hasStroke bool
}

// layout is the node structure chosen for a group
type layout uint8

const (
	empty     layout = iota // no shapes, no node
	coalesced               // one path node for all the shapes
	perShape                // one node per shape
)

// classify selects the layout of a group, before any emission.
func classify(shapes []scene.Shape, group scene.ShapeGroup) layout {
	if len(group.ShapeIDs) == 0 {
		return empty
	}
	for _, id := range group.ShapeIDs {
		if _, isPath := shapes[id].(*scene.Path); !isPath {
			return perShape
		}
	}
	return coalesced
}

type writer struct {
	opts     Options
	scene    *scene.Scene
	defs     *svgdoc.Element
	body     *svgdoc.Element // root or gamma group
	warnings []Warning
}

// Serialize builds the document tree of `s`. The scene is validated
// first: an invalid scene (unknown shape kind, malformed path, missing
// shape, inconsistent gradient) is an error and nothing is written.
// `s` is never modified.
func Serialize(s *scene.Scene, opts Options) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	root := svgdoc.NewElement("svg",
		svgdoc.Attr{Name: "version", Value: "1.1"},
		svgdoc.Attr{Name: "xmlns", Value: svgNamespace},
		attr("width", s.Width),
		attr("height", s.Height),
	)
	if opts.Normalize {
		maxSide := s.MaxSide()
		root.Set("viewBox", fmt.Sprintf("0 0 %s %s", svgpath.FormatFloat(s.Width/maxSide), svgpath.FormatFloat(s.Height/maxSide)))
		normalized, err := scene.Normalized(s)
		if err != nil {
			return nil, err
		}
		s = normalized
	} else if opts.UseViewBox {
		root.Set("viewBox", fmt.Sprintf("0 0 %s %s", svgpath.FormatFloat(s.Width), svgpath.FormatFloat(s.Height)))
	}

	w := writer{opts: opts, scene: s}
	w.defs = root.AddChild("defs")
	w.body = root
	if opts.UseGamma {
		w.defs.Append(gammaFilter())
		w.body = root.AddChild("g", svgdoc.Attr{Name: "style", Value: "filter:url(#" + gammaID + ")"})
	}

	paints := make([]groupPaint, len(s.Groups))
	for i, group := range s.Groups {
		var err error
		paints[i], err = w.resolveGroup(i, group)
		if err != nil {
			return nil, err
		}
	}

	for i, group := range s.Groups {
		if err := w.writeGroup(i, group, paints[i]); err != nil {
			return nil, err
		}
	}

	return &Result{Root: root, Warnings: w.warnings}, nil
}

func gammaFilter() *svgdoc.Element {
	filter := svgdoc.NewElement("filter",
		svgdoc.Attr{Name: "id", Value: gammaID},
		svgdoc.Attr{Name: "x", Value: "0"},
		svgdoc.Attr{Name: "y", Value: "0"},
		svgdoc.Attr{Name: "width", Value: "100%"},
		svgdoc.Attr{Name: "height", Value: "100%"},
	)
	transfer := filter.AddChild("feComponentTransfer", svgdoc.Attr{Name: "color-interpolation-filters", Value: "sRGB"})
	for _, fn := range [...]string{"feFuncR", "feFuncG", "feFuncB", "feFuncA"} {
		transfer.AddChild(fn,
			svgdoc.Attr{Name: "type", Value: "gamma"},
			svgdoc.Attr{Name: "amplitude", Value: "1"},
			attr("exponent", 1/2.2),
		)
	}
	return filter
}

// resolveGroup resolves the colors of the group and adds
// the gradient definitions.
func (w *writer) resolveGroup(index int, group scene.ShapeGroup) (groupPaint, error) {
	out := groupPaint{hasFill: group.Fill != nil, hasStroke: group.Stroke != nil}
	var err error
	out.fill, err = w.resolve(index, "fill", group.Fill)
	if err != nil {
		return out, err
	}
	out.stroke, err = w.resolve(index, "stroke", group.Stroke)
	return out, err
}

func (w *writer) resolve(index int, target string, c scene.Color) (Paint, error) {
	p, err := ResolveColor(c, fmt.Sprintf("shape_%d_%s", index, target))
	if err != nil {
		if !errors.Is(err, ErrUnsupportedColor) || w.opts.ErrorMode == StrictErrorMode {
			return p, fmt.Errorf("group %d %s: %w", index, target, err)
		}
		if w.opts.ErrorMode == WarnErrorMode {
			Logger().Warn("color skipped", "group", index, "target", target, "error", err)
			w.warnings = append(w.warnings, Warning{Group: index, Target: target, Err: err})
		}
		return Paint{}, nil
	}
	if p.Def != nil {
		w.defs.Append(p.Def)
	}
	return p, nil
}

func (w *writer) writeGroup(index int, group scene.ShapeGroup, paint groupPaint) error {
	shapes := w.scene.Shapes
	l := classify(shapes, group)
	switch l {
	case empty:
		return nil
	case coalesced:
		// the styling of the last path wins
		var (
			data []string
			last *scene.Path
		)
		for _, id := range group.ShapeIDs {
			last = shapes[id].(*scene.Path)
			d, err := svgpath.Format(last.Points, last.NumControlPoints, w.opts.CubicOnly)
			if err != nil {
				return fmt.Errorf("shape %d: %w", id, err)
			}
			data = append(data, d)
		}
		node := w.body.AddChild("path", svgdoc.Attr{Name: "d", Value: strings.Join(data, " ")})
		applyStyle(node, last.StrokeWidth, paint)
	case perShape:
		for _, id := range group.ShapeIDs {
			node, err := w.shapeNode(shapes[id])
			if err != nil {
				return fmt.Errorf("shape %d: %w", id, err)
			}
			strokeWidth, err := scene.StrokeWidth(shapes[id])
			if err != nil {
				return fmt.Errorf("shape %d: %w", id, err)
			}
			applyStyle(node, strokeWidth, paint)
			w.body.Append(node)
		}
	}
	Logger().Debug("group written", "group", index, "shapes", len(group.ShapeIDs), "coalesced", l == coalesced)
	return nil
}

// shapeNode returns the node of one shape, without styling
func (w *writer) shapeNode(sh scene.Shape) (*svgdoc.Element, error) {
	switch sh := sh.(type) {
	case *scene.Circle:
		return svgdoc.NewElement("circle",
			attr("r", sh.Radius),
			attr("cx", sh.Center.X),
			attr("cy", sh.Center.Y),
		), nil
	case *scene.Ellipse:
		return svgdoc.NewElement("ellipse",
			attr("cx", sh.Center.X),
			attr("cy", sh.Center.Y),
			attr("rx", sh.Radius.X),
			attr("ry", sh.Radius.Y),
		), nil
	case *scene.Polygon:
		coords := make([]string, 0, 2*len(sh.Points))
		for _, p := range sh.Points {
			coords = append(coords, svgpath.FormatFloat(p.X), svgpath.FormatFloat(p.Y))
		}
		return svgdoc.NewElement("polygon", svgdoc.Attr{Name: "points", Value: strings.Join(coords, " ")}), nil
	case *scene.Path:
		d, err := svgpath.Format(sh.Points, sh.NumControlPoints, w.opts.CubicOnly)
		if err != nil {
			return nil, err
		}
		return svgdoc.NewElement("path", svgdoc.Attr{Name: "d", Value: d}), nil
	case *scene.Rect:
		return svgdoc.NewElement("rect",
			attr("x", sh.PMin.X),
			attr("y", sh.PMin.Y),
			attr("width", sh.PMax.X-sh.PMin.X),
			attr("height", sh.PMax.Y-sh.PMin.Y),
		), nil
	default:
		return nil, fmt.Errorf("%w: %T", scene.ErrUnknownShape, sh)
	}
}

// applyStyle sets the stroke width and the group colors.
// The stroke width of the model is a half width.
func applyStyle(node *svgdoc.Element, strokeWidth float64, paint groupPaint) {
	node.Set("stroke-width", svgpath.FormatFloat(2*strokeWidth))
	if !paint.hasFill {
		node.Set("fill", "none")
	} else if paint.fill.Value != "" {
		node.Set("fill", paint.fill.Value)
		if paint.fill.Opacity != "" {
			node.Set("opacity", paint.fill.Opacity)
		}
	}
	if paint.hasStroke {
		if paint.stroke.Value != "" {
			node.Set("stroke", paint.stroke.Value)
			if paint.stroke.Opacity != "" {
				node.Set("stroke-opacity", paint.stroke.Opacity)
			}
		}
		node.Set("stroke-linecap", "round")
		node.Set("stroke-linejoin", "round")
	}
}

// Encode writes the SVG document of `s` to `dst`.
func Encode(dst io.Writer, s *scene.Scene, opts Options) ([]Warning, error) {
	res, err := Serialize(s, opts)
	if err != nil {
		return nil, err
	}
	return res.Warnings, res.Root.Encode(dst, opts.Indent)
}

// String returns the SVG document of `s`, with the
// colors skipped in WarnErrorMode.
func String(s *scene.Scene, opts Options) (string, []Warning, error) {
	var buf bytes.Buffer
	warnings, err := Encode(&buf, s, opts)
	if err != nil {
		return "", nil, err
	}
	return buf.String(), warnings, nil
}

// WriteFile writes the SVG document of `s` to the named file.
// The file is not created if the serialization fails.
func WriteFile(filename string, s *scene.Scene, opts Options) ([]Warning, error) {
	var buf bytes.Buffer
	warnings, err := Encode(&buf, s, opts)
	if err != nil {
		return nil, err
	}
	return warnings, os.WriteFile(filename, buf.Bytes(), 0o644)
}
