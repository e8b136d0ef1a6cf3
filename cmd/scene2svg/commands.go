package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/vecsvg/scene"
	"github.com/benoitkugler/vecsvg/svgdoc"
	"github.com/benoitkugler/vecsvg/svgpath"
	"github.com/benoitkugler/vecsvg/svgwriter"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "scene2svg",
		Short:        "Convert vector scenes to SVG",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			svgwriter.SetLogger(logger)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log each written group")
	root.AddCommand(newConvertCmd(), newInfoCmd())
	return root
}

// readScene uses the explicit format if not empty,
// or the extension of the file.
func readScene(filename, format string) (*scene.Scene, error) {
	if format == "" {
		return scene.ReadFile(filename)
	}
	f, err := scene.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return scene.Decode(file, f)
}

func newConvertCmd() *cobra.Command {
	var (
		opts   = svgwriter.DefaultOptions()
		strict bool
		format string
		output string
	)
	cmd := &cobra.Command{
		Use:   "convert [flags] scene-file",
		Short: "Write the SVG document of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readScene(args[0], format)
			if err != nil {
				return err
			}
			if strict {
				opts.ErrorMode = svgwriter.StrictErrorMode
			}
			if output == "" || output == "-" {
				_, err = svgwriter.Encode(cmd.OutOrStdout(), s, opts)
				return err
			}
			warnings, err := svgwriter.WriteFile(output, s, opts)
			if err != nil {
				return err
			}
			svgwriter.Logger().Debug("scene written", "file", output, "warnings", len(warnings))
			return nil
		},
	}
	flags := cmd.Flags()
	flags.BoolVar(&opts.UseGamma, "gamma", opts.UseGamma, "apply a gamma correction of 1/2.2")
	flags.BoolVar(&opts.CubicOnly, "cubic-only", opts.CubicOnly, "write every path segment as a cubic curve")
	flags.BoolVar(&opts.UseViewBox, "viewbox", opts.UseViewBox, "add a viewBox matching the canvas")
	flags.BoolVar(&opts.Normalize, "normalize", opts.Normalize, "map the scene into the unit square")
	flags.BoolVar(&strict, "strict", false, "fail on unsupported colors instead of skipping them")
	flags.StringVar(&format, "format", "", "scene format (json, yaml, toml); default from the file extension")
	flags.StringVarP(&output, "output", "o", "", "output file; default to standard output")
	return cmd
}

func newInfoCmd() *cobra.Command {
	var (
		format string
		svg    bool
	)
	cmd := &cobra.Command{
		Use:   "info [flags] file",
		Short: "Describe a scene, or an SVG document with --svg",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if svg {
				return describeSVG(cmd.OutOrStdout(), args[0])
			}
			s, err := readScene(args[0], format)
			if err != nil {
				return err
			}
			return describeScene(cmd.OutOrStdout(), s)
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "scene format (json, yaml, toml); default from the file extension")
	cmd.Flags().BoolVar(&svg, "svg", false, "read an SVG document instead of a scene")
	return cmd
}

func shapeKind(sh scene.Shape) string {
	switch sh.(type) {
	case *scene.Path:
		return "path"
	case *scene.Polygon:
		return "polygon"
	case *scene.Circle:
		return "circle"
	case *scene.Ellipse:
		return "ellipse"
	case *scene.Rect:
		return "rect"
	default:
		return "unknown"
	}
}

func printCounts(w io.Writer, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "  %-20s %d\n", k, counts[k])
	}
}

func describeScene(w io.Writer, s *scene.Scene) error {
	fmt.Fprintf(w, "canvas: %s x %s\n", svgpath.FormatFloat(s.Width), svgpath.FormatFloat(s.Height))
	fmt.Fprintf(w, "shapes: %d\n", len(s.Shapes))
	counts := map[string]int{}
	for _, sh := range s.Shapes {
		counts[shapeKind(sh)]++
	}
	printCounts(w, counts)
	fmt.Fprintf(w, "groups: %d\n", len(s.Groups))

	bbox, err := s.Bounds()
	if err != nil {
		return err
	}
	if svgpath.IsEmpty(bbox) {
		fmt.Fprintln(w, "bounds: empty")
		return nil
	}
	fmt.Fprintf(w, "bounds: (%s, %s) - (%s, %s)\n",
		svgpath.FormatFloat(bbox.LLx), svgpath.FormatFloat(bbox.LLy),
		svgpath.FormatFloat(bbox.URx), svgpath.FormatFloat(bbox.URy))
	fits, err := s.Fits()
	if err != nil {
		return err
	}
	if !fits {
		svgwriter.Logger().Warn("shapes exceed the canvas: normalization will not map them into the unit square")
	}
	return nil
}

func describeSVG(w io.Writer, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	root, err := svgdoc.Read(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "root: %s %s x %s\n", root.Name, root.Attr("width"), root.Attr("height"))
	if vb, ok := root.Get("viewBox"); ok {
		fmt.Fprintf(w, "viewBox: %s\n", vb)
	}
	counts := map[string]int{}
	root.Walk(func(el *svgdoc.Element) bool {
		if el != root {
			counts[el.Name]++
		}
		return true
	})
	fmt.Fprintln(w, "elements:")
	printCounts(w, counts)
	return nil
}
