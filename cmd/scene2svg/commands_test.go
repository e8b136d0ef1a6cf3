package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoitkugler/vecsvg/svgdoc"
	"github.com/benoitkugler/vecsvg/svgwriter"
)

const sceneYAML = `
width: 200
height: 100
shapes:
  - type: path
    points: [[0, 0], [100, 0], [100, 100]]
    num_control_points: [0, 0]
    stroke_width: 1
  - type: path
    points: [[10, 10], [20, 10], [20, 20]]
    num_control_points: [1]
    stroke_width: 1
  - type: circle
    center: [50, 50]
    radius: 10
    stroke_width: 0
groups:
  - shape_ids: [0, 1]
    fill: {name: black}
  - shape_ids: [2]
    stroke:
      radial: {center: [0, 0], radius: [1, 1], offsets: [0], stop_colors: [[0, 0, 0]]}
`

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	defer svgwriter.SetLogger(nil)
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeScene(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))
	return file
}

func TestConvert(t *testing.T) {
	input := writeScene(t, "scene.yaml", sceneYAML)

	stdout, stderr, err := run(t, "convert", "--gamma", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "color skipped")

	root, err := svgdoc.Read(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, "0 0 200 100", root.Attr("viewBox"))
	assert.NotNil(t, root.Find("filter"))
	paths := root.FindAll("path")
	require.Len(t, paths, 1)
	assert.Equal(t, "M 0 0 L 100 0 L 100 100 M 10 10 Q 20 10 20 20", paths[0].Attr("d"))

	_, _, err = run(t, "convert", "--strict", input)
	assert.ErrorIs(t, err, svgwriter.ErrUnsupportedColor)
}

func TestConvertToFile(t *testing.T) {
	input := writeScene(t, "scene.data", sceneYAML)
	output := filepath.Join(t.TempDir(), "out.svg")

	_, _, err := run(t, "convert", input)
	assert.Error(t, err, "unknown extension")

	stdout, _, err := run(t, "convert", "--format", "yaml", "--normalize", "--cubic-only", "--viewbox=false", "-o", output, input)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	root, err := svgdoc.Read(bytes.NewReader(content))
	require.NoError(t, err)
	assert.Equal(t, "0 0 1 0.5", root.Attr("viewBox"))
	d := root.Find("path").Attr("d")
	assert.NotContains(t, d, "L")
	assert.NotContains(t, d, "Q")
}

func TestInfo(t *testing.T) {
	input := writeScene(t, "scene.yml", sceneYAML)
	stdout, stderr, err := run(t, "info", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "canvas: 200 x 100")
	assert.Contains(t, stdout, "shapes: 3")
	assert.Contains(t, stdout, "groups: 2")
	assert.Contains(t, stdout, "bounds: (0, 0) - (100, 100)")
	assert.Empty(t, stderr)

	outside := strings.Replace(sceneYAML, "center: [50, 50]", "center: [195, 50]", 1)
	input = writeScene(t, "outside.yml", outside)
	_, stderr, err = run(t, "info", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "shapes exceed the canvas")
}

func TestInfoSVG(t *testing.T) {
	input := writeScene(t, "scene.yml", sceneYAML)
	output := filepath.Join(t.TempDir(), "out.svg")
	_, _, err := run(t, "convert", "-o", output, input)
	require.NoError(t, err)

	stdout, _, err := run(t, "info", "--svg", output)
	require.NoError(t, err)
	assert.Contains(t, stdout, "root: svg 200 x 100")
	assert.Contains(t, stdout, "viewBox: 0 0 200 100")
	assert.Contains(t, stdout, "circle")
}
