package reader

import (
	"errors"
	"fmt"

	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/model"
)

// slotTokens is the token count above which a BO line describes a slot.
const slotTokens = 7

// dispatch parses one block. It returns a nil record and no error for
// blocks that are dropped.
func dispatch(b core.Block, warnings *core.Warnings) (model.Record, error) {
	rec, err := parseBlock(b, warnings)
	if errors.Is(err, core.ErrUnknownRecordType) {
		warnings.Add(b.Line, b.Code, "unknown record type `%s`, block of %d lines dropped", b.Code, len(b.Lines))
		return nil, nil
	}
	return rec, err
}

func parseBlock(b core.Block, warnings *core.Warnings) (model.Record, error) {
	switch b.Code {
	case core.CodeOuterBorder:
		pts, err := parseContour(b, model.KindOuterBorder, warnings)
		if err != nil {
			return nil, err
		}
		return &model.OuterBorder{Contour: pts}, nil

	case core.CodeInnerBorder:
		pts, err := parseContour(b, model.KindInnerBorder, warnings)
		if err != nil {
			return nil, err
		}
		return &model.InnerBorder{Contour: pts}, nil

	case core.CodeCut:
		f, err := firstLine(b, model.KindCut, warnings)
		if err != nil {
			return nil, err
		}
		return parseCut(f)

	case core.CodeBend:
		f, err := firstLine(b, model.KindBend, warnings)
		if err != nil {
			return nil, err
		}
		return parseBend(f)

	case core.CodeHole:
		f, err := firstLine(b, model.KindHole, warnings)
		if err != nil {
			return nil, err
		}
		if f.Len() > slotTokens {
			f.Record = model.KindSlot.String()
			return parseSlot(f)
		}
		return parseHole(f)

	case core.CodeNumeration:
		f, err := firstLine(b, model.KindNumeration, warnings)
		if err != nil {
			return nil, err
		}
		return parseNumeration(f)

	default:
		return nil, fmt.Errorf("%w: `%s`", core.ErrUnknownRecordType, b.Code)
	}
}

// firstLine returns a field cursor over the first data line of b. Further
// lines are ignored.
func firstLine(b core.Block, kind model.RecordKind, warnings *core.Warnings) (*core.Fields, error) {
	if len(b.Lines) == 0 {
		return nil, &core.FieldError{Kind: core.ErrMissingField, Record: kind.String(), Field: "data line", Line: b.Line}
	}
	return newFields(b, 0, kind, warnings), nil
}

func newFields(b core.Block, i int, kind model.RecordKind, warnings *core.Warnings) *core.Fields {
	f := core.NewFields(b.Lines[i], kind.String(), b.Nums[i])
	f.Code = b.Code
	f.Warnings = warnings
	return f
}

// strictFace reads a required face code.
func strictFace(f *core.Fields) (model.Face, error) {
	tok, err := f.Token("face")
	if err != nil {
		return model.FaceFront, err
	}
	face, err := model.ParseFace(tok)
	if err != nil {
		var fe *core.FieldError
		if errors.As(err, &fe) {
			fe.Record = f.Record
			fe.Line = f.Line
		}
		return model.FaceFront, err
	}
	return face, nil
}
