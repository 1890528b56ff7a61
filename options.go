package dstv

import (
	"strings"

	"github.com/tsawler/dstv/model"
	"github.com/tsawler/dstv/svg"
)

// ConvertOptions holds configuration for drawing generation.
type ConvertOptions struct {
	// Face selection, nil means all faces
	faces []model.Face

	// Bevel overlay lines on borders
	bevels bool

	// Colors and widths for SVG and PNG output
	style svg.Style
}

// defaultOptions returns the default conversion options.
func defaultOptions() ConvertOptions {
	return ConvertOptions{
		faces:  nil,
		bevels: true,
		style:  svg.DefaultStyle(),
	}
}

// clone creates a deep copy of ConvertOptions.
func (o ConvertOptions) clone() ConvertOptions {
	newOpts := ConvertOptions{
		bevels: o.bevels,
		style:  o.style,
	}

	if o.faces != nil {
		newOpts.faces = make([]model.Face, len(o.faces))
		copy(newOpts.faces, o.faces)
	}

	return newOpts
}

// ParseFaces parses a comma separated list of face codes such as "v,o".
// An empty list selects all faces and returns nil.
func ParseFaces(list string) ([]model.Face, error) {
	var faces []model.Face
	for _, code := range strings.Split(list, ",") {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		f, err := model.ParseFace(code)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	return faces, nil
}
