package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Format is a scene file format.
type Format uint8

const (
	JSON Format = iota
	YAML
	TOML
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "<unknown Format>"
	}
}

// ParseFormat accepts "json", "yaml" (or "yml") and "toml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("unsupported scene format %q", s)
}

// FormatFromName infers the format from the file extension.
func FormatFromName(filename string) (Format, error) {
	return ParseFormat(filepath.Ext(filename))
}

// the on-disk layout of a scene
type (
	fileScene struct {
		Width  float64     `json:"width" yaml:"width" toml:"width"`
		Height float64     `json:"height" yaml:"height" toml:"height"`
		Shapes []fileShape `json:"shapes" yaml:"shapes" toml:"shapes"`
		Groups []fileGroup `json:"groups" yaml:"groups" toml:"groups"`
	}

	fileShape struct {
		Type             string      `json:"type" yaml:"type" toml:"type"`
		Points           [][]float64 `json:"points,omitempty" yaml:"points,omitempty" toml:"points,omitempty"`
		NumControlPoints []int       `json:"num_control_points,omitempty" yaml:"num_control_points,omitempty" toml:"num_control_points,omitempty"`
		Center           []float64   `json:"center,omitempty" yaml:"center,omitempty" toml:"center,omitempty"`
		Radius           float64     `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
		Radii            []float64   `json:"radii,omitempty" yaml:"radii,omitempty" toml:"radii,omitempty"`
		PMin             []float64   `json:"p_min,omitempty" yaml:"p_min,omitempty" toml:"p_min,omitempty"`
		PMax             []float64   `json:"p_max,omitempty" yaml:"p_max,omitempty" toml:"p_max,omitempty"`
		StrokeWidth      float64     `json:"stroke_width" yaml:"stroke_width" toml:"stroke_width"`
	}

	fileGroup struct {
		ShapeIDs []int      `json:"shape_ids" yaml:"shape_ids" toml:"shape_ids"`
		Fill     *fileColor `json:"fill,omitempty" yaml:"fill,omitempty" toml:"fill,omitempty"`
		Stroke   *fileColor `json:"stroke,omitempty" yaml:"stroke,omitempty" toml:"stroke,omitempty"`
	}

	// exactly one of RGBA, Name, Linear, Radial is set
	fileColor struct {
		RGBA   []float64     `json:"rgba,omitempty" yaml:"rgba,omitempty" toml:"rgba,omitempty"`
		Name   string        `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
		Alpha  *float64      `json:"alpha,omitempty" yaml:"alpha,omitempty" toml:"alpha,omitempty"`
		Linear *fileGradient `json:"linear,omitempty" yaml:"linear,omitempty" toml:"linear,omitempty"`
		Radial *fileGradient `json:"radial,omitempty" yaml:"radial,omitempty" toml:"radial,omitempty"`
	}

	fileGradient struct {
		Begin      []float64   `json:"begin,omitempty" yaml:"begin,omitempty" toml:"begin,omitempty"`
		End        []float64   `json:"end,omitempty" yaml:"end,omitempty" toml:"end,omitempty"`
		Center     []float64   `json:"center,omitempty" yaml:"center,omitempty" toml:"center,omitempty"`
		Radius     []float64   `json:"radius,omitempty" yaml:"radius,omitempty" toml:"radius,omitempty"`
		Offsets    []float64   `json:"offsets" yaml:"offsets" toml:"offsets"`
		StopColors [][]float64 `json:"stop_colors" yaml:"stop_colors" toml:"stop_colors"`
		Units      string      `json:"units,omitempty" yaml:"units,omitempty" toml:"units,omitempty"`
	}
)

var errParamMismatch = errors.New("param mismatch")

// Decode reads a scene in the given format, then validates it.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var (
		fs  fileScene
		err error
	)
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&fs)
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&fs)
	case TOML:
		err = toml.NewDecoder(r).DisallowUnknownFields().Decode(&fs)
	default:
		return nil, fmt.Errorf("unsupported scene format %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s scene: %w", format, err)
	}
	s, err := fs.toScene()
	if err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ReadFile reads the named scene file, whose format is
// inferred from its extension.
func ReadFile(filename string) (*Scene, error) {
	format, err := FormatFromName(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f, format)
}

func toPoint(v []float64) (Point, error) {
	if len(v) != 2 {
		return Point{}, fmt.Errorf("%w: point with %d coordinates", errParamMismatch, len(v))
	}
	return Point{X: v[0], Y: v[1]}, nil
}

func toPoints(vs [][]float64) ([]Point, error) {
	out := make([]Point, len(vs))
	for i, v := range vs {
		var err error
		if out[i], err = toPoint(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toRGBA(v []float64) (RGBA, error) {
	switch len(v) {
	case 3:
		return RGBA{v[0], v[1], v[2], 1}, nil
	case 4:
		return RGBA{v[0], v[1], v[2], v[3]}, nil
	}
	return RGBA{}, fmt.Errorf("%w: color with %d channels", errParamMismatch, len(v))
}

func (fs fileScene) toScene() (*Scene, error) {
	out := &Scene{
		Width:  fs.Width,
		Height: fs.Height,
		Shapes: make([]Shape, len(fs.Shapes)),
		Groups: make([]ShapeGroup, len(fs.Groups)),
	}
	if !(fs.Width > 0 && fs.Height > 0) {
		return nil, fmt.Errorf("invalid canvas size %g x %g", fs.Width, fs.Height)
	}
	for i, sh := range fs.Shapes {
		var err error
		if out.Shapes[i], err = sh.toShape(); err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
	}
	for i, g := range fs.Groups {
		fill, err := g.Fill.toColor()
		if err != nil {
			return nil, fmt.Errorf("group %d fill: %w", i, err)
		}
		stroke, err := g.Stroke.toColor()
		if err != nil {
			return nil, fmt.Errorf("group %d stroke: %w", i, err)
		}
		out.Groups[i] = ShapeGroup{ShapeIDs: g.ShapeIDs, Fill: fill, Stroke: stroke}
	}
	return out, nil
}

func (sh fileShape) toShape() (Shape, error) {
	var err error
	switch strings.ToLower(sh.Type) {
	case "path":
		out := &Path{NumControlPoints: sh.NumControlPoints, StrokeWidth: sh.StrokeWidth}
		out.Points, err = toPoints(sh.Points)
		return out, err
	case "polygon":
		out := &Polygon{StrokeWidth: sh.StrokeWidth}
		out.Points, err = toPoints(sh.Points)
		return out, err
	case "circle":
		out := &Circle{Radius: sh.Radius, StrokeWidth: sh.StrokeWidth}
		out.Center, err = toPoint(sh.Center)
		return out, err
	case "ellipse":
		out := &Ellipse{StrokeWidth: sh.StrokeWidth}
		if out.Center, err = toPoint(sh.Center); err != nil {
			return nil, err
		}
		out.Radius, err = toPoint(sh.Radii)
		return out, err
	case "rect":
		out := &Rect{StrokeWidth: sh.StrokeWidth}
		if out.PMin, err = toPoint(sh.PMin); err != nil {
			return nil, err
		}
		out.PMax, err = toPoint(sh.PMax)
		return out, err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, sh.Type)
	}
}

func (c *fileColor) toColor() (Color, error) {
	if c == nil {
		return nil, nil
	}
	set := 0
	for _, b := range [...]bool{c.RGBA != nil, c.Name != "", c.Linear != nil, c.Radial != nil} {
		if b {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: a color needs exactly one of rgba, name, linear, radial", errParamMismatch)
	}

	switch {
	case c.RGBA != nil:
		col, err := toRGBA(c.RGBA)
		if err != nil {
			return nil, err
		}
		if c.Alpha != nil {
			col.A = *c.Alpha
		}
		return &SolidColor{col}, nil
	case c.Name != "":
		col, err := parseNamedColor(c.Name)
		if err != nil {
			return nil, err
		}
		if c.Alpha != nil {
			col.A = *c.Alpha
		}
		return &SolidColor{col}, nil
	case c.Linear != nil:
		g := c.Linear
		out := &LinearGradient{Offsets: g.Offsets, Units: g.Units}
		var err error
		if out.Begin, err = toPoint(g.Begin); err != nil {
			return nil, err
		}
		if out.End, err = toPoint(g.End); err != nil {
			return nil, err
		}
		out.StopColors, err = g.stopColors()
		return out, err
	default:
		g := c.Radial
		out := &RadialGradient{Offsets: g.Offsets, Units: g.Units}
		var err error
		if out.Center, err = toPoint(g.Center); err != nil {
			return nil, err
		}
		if out.Radius, err = toPoint(g.Radius); err != nil {
			return nil, err
		}
		out.StopColors, err = g.stopColors()
		return out, err
	}
}

func (g *fileGradient) stopColors() ([]RGBA, error) {
	out := make([]RGBA, len(g.StopColors))
	for i, v := range g.StopColors {
		var err error
		if out[i], err = toRGBA(v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// parseNamedColor accepts the SVG color keywords and
// the #rgb and #rrggbb hexadecimal forms.
func parseNamedColor(s string) (RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return RGBA{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255, float64(c.A) / 255}, nil
	}
	if strings.HasPrefix(s, "#") && (len(s) == 4 || len(s) == 7) {
		if c, err := colorful.Hex(s); err == nil {
			r, g, b := c.RGB255()
			return RGBA{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}, nil
		}
	}
	return RGBA{}, fmt.Errorf("invalid color %q", s)
}
