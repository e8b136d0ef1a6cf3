package svgwriter

// ErrorMode determines how the writer handles colors it
// cannot express, such as radial gradients.
type ErrorMode uint8

const (
	// WarnErrorMode skips the color and reports a diagnostic.
	WarnErrorMode ErrorMode = iota
	// IgnoreErrorMode silently skips the color.
	IgnoreErrorMode
	// StrictErrorMode aborts the serialization.
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case WarnErrorMode:
		return "warn"
	case IgnoreErrorMode:
		return "ignore"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// Options controls the output document.
type Options struct {
	// UseGamma wraps the shapes in a group filtered
	// by a gamma correction of exponent 1/2.2.
	UseGamma bool
	// CubicOnly elevates lines and quadratic curves of paths to cubics.
	CubicOnly bool
	// UseViewBox adds a viewBox matching the canvas.
	UseViewBox bool
	// Normalize maps the scene into the unit square before writing it.
	// The input scene is not modified.
	Normalize bool

	ErrorMode ErrorMode

	// Indent is the indentation of one level of the document.
	// An empty string writes the document on one line.
	Indent string
}

// DefaultOptions returns the options used when none are specified:
// a viewBox, no gamma correction, no normalization, and mixed
// line/quadratic/cubic paths.
func DefaultOptions() Options {
	return Options{UseViewBox: true, Indent: "  "}
}
