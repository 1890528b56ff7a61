// Package svg writes composed drawings as SVG documents.
//
// The document is built as a golang.org/x/net/html node tree and serialized
// with html.Render, which takes care of attribute and text escaping:
//
//	drawing := layout.Compose(piece)
//	err := svg.Write(os.Stdout, drawing)
//
// Each non-empty face becomes a <g> element named after the face with its
// stacking transform. Numbers are written in their shortest exact form so
// identical drawings serialize to identical bytes.
//
// Colors and line widths come from a [Style], which can be loaded from YAML:
//
//	style, err := svg.LoadStyleFile("style.yaml")
//	err = svg.NewWriter(style).Write(w, drawing)
package svg
