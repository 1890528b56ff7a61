package reader

import (
	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/model"
)

func parseContour(b core.Block, kind model.RecordKind, warnings *core.Warnings) ([]model.ContourPoint, error) {
	if len(b.Lines) == 0 {
		return nil, &core.FieldError{Kind: core.ErrMissingField, Record: kind.String(), Field: "contour point", Line: b.Line}
	}

	pts := make([]model.ContourPoint, 0, len(b.Lines))
	for i := range b.Lines {
		p, err := parseContourPoint(newFields(b, i, kind, warnings))
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// parseContourPoint reads "[face] x y radius [bevel]". A first token that is
// not a face code is taken as x and the point is placed on the front face.
func parseContourPoint(f *core.Fields) (model.ContourPoint, error) {
	face := model.FaceFront
	if tok, ok := f.Peek(); ok && model.IsFace(tok) {
		face, _ = model.ParseFace(tok)
		f.Next()
	}

	x, err := f.Float("x")
	if err != nil {
		return model.ContourPoint{}, err
	}
	y, err := f.Float("y")
	if err != nil {
		return model.ContourPoint{}, err
	}
	radius, err := f.LenientFloat("radius")
	if err != nil {
		return model.ContourPoint{}, err
	}
	bevel, err := f.OptionalFloat("bevel", 0)
	if err != nil {
		return model.ContourPoint{}, err
	}

	return model.NewContourPoint(face, x, y, radius, bevel), nil
}
