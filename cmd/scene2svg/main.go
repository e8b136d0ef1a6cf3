// Command scene2svg converts scene files (JSON, YAML or TOML)
// to SVG documents.
//
// Usage:
//
//	scene2svg convert [flags] scene.yaml
//	scene2svg info scene.yaml
//	scene2svg info --svg drawing.svg
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
