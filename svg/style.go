package svg

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Style holds the colors and widths used for drawing. Colors are SVG color
// values such as "grey" or "#ff0000".
type Style struct {
	// Background fills the canvas when set
	Background string `yaml:"background"`

	OuterFill   string  `yaml:"outer_fill"`
	InnerFill   string  `yaml:"inner_fill"`
	Stroke      string  `yaml:"stroke"`
	StrokeWidth float64 `yaml:"stroke_width"`

	BevelStroke string  `yaml:"bevel_stroke"`
	BevelWidth  float64 `yaml:"bevel_width"`

	HoleFill   string `yaml:"hole_fill"`
	SlotFill   string `yaml:"slot_fill"`
	CutStroke  string `yaml:"cut_stroke"`
	BendStroke string `yaml:"bend_stroke"`

	TextFill   string `yaml:"text_fill"`
	FontFamily string `yaml:"font_family"`
}

// DefaultStyle returns the default drawing style.
func DefaultStyle() Style {
	return Style{
		OuterFill:   "grey",
		InnerFill:   "white",
		Stroke:      "black",
		StrokeWidth: 0.5,
		BevelStroke: "red",
		BevelWidth:  4,
		HoleFill:    "white",
		SlotFill:    "white",
		CutStroke:   "black",
		BendStroke:  "black",
		TextFill:    "black",
	}
}

// LoadStyle reads a YAML style sheet. Keys that are not set keep their
// default value; unknown keys are an error.
func LoadStyle(r io.Reader) (Style, error) {
	style := DefaultStyle()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&style); err != nil {
		if errors.Is(err, io.EOF) {
			return style, nil
		}
		return Style{}, fmt.Errorf("failed to decode style: %w", err)
	}
	return style, nil
}

// LoadStyleFile reads a YAML style sheet from a file.
func LoadStyleFile(path string) (Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to open style: %w", err)
	}
	defer f.Close()

	return LoadStyle(f)
}
