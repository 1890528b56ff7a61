package reader

import (
	"math"
	"strconv"
	"strings"

	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/model"
)

// Positional header fields, 0-based.
const (
	hdrOrder = iota
	hdrDrawing
	hdrPhase
	hdrPiece
	hdrSteelGrade
	hdrQuantity
	hdrProfile
	hdrCodeProfile
	hdrLength
	hdrProfileHeight
	hdrFlangeWidth
	hdrFlangeThickness
	hdrWebThickness
	hdrRadius
	hdrWeight
	hdrPaintingSurface
	hdrWebStartCut
	hdrWebEndCut
	hdrFlangeStartCut
	hdrFlangeEndCut
	hdrText1
)

const headerRecord = "Header"

// headerDecoder carries the first error so fields can be read in sequence.
type headerDecoder struct {
	lines []string
	nums  []int
	err   error
}

func parseHeader(lines []string, nums []int) (model.Header, error) {
	if len(lines) < core.HeaderLines {
		return model.Header{}, &core.FieldError{
			Kind:   core.ErrInvalidHeader,
			Record: headerRecord,
			Field:  "header lines",
			Value:  strconv.Itoa(len(lines)),
		}
	}

	d := &headerDecoder{lines: lines, nums: nums}
	h := model.Header{
		OrderID:    d.text(hdrOrder),
		DrawingID:  d.text(hdrDrawing),
		PhaseID:    d.text(hdrPhase),
		PieceID:    d.text(hdrPiece),
		SteelGrade: d.text(hdrSteelGrade),
		Quantity:   d.integer(hdrQuantity, "quantity"),
		Profile:    d.text(hdrProfile),
	}
	h.CodeProfile = d.codeProfile(hdrCodeProfile)
	h.Length, h.SawLength = d.length(hdrLength)

	h.ProfileHeight = d.float(hdrProfileHeight, "profile_height")
	h.FlangeWidth = d.float(hdrFlangeWidth, "flange_width")
	h.FlangeThickness = d.float(hdrFlangeThickness, "flange_thickness")
	h.WebThickness = d.float(hdrWebThickness, "web_thickness")
	h.Radius = d.float(hdrRadius, "radius")
	h.WeightPerMeter = d.float(hdrWeight, "weight_by_meter")
	h.PaintingSurface = d.float(hdrPaintingSurface, "painting_surface_by_meter")
	h.WebStartCut = d.float(hdrWebStartCut, "web_start_cut")
	h.WebEndCut = d.float(hdrWebEndCut, "web_end_cut")
	h.FlangeStartCut = d.float(hdrFlangeStartCut, "flange_start_cut")
	h.FlangeEndCut = d.float(hdrFlangeEndCut, "flange_end_cut")
	for i := range h.Text {
		h.Text[i] = d.text(hdrText1 + i)
	}

	if d.err != nil {
		return model.Header{}, d.err
	}
	return h, nil
}

func (d *headerDecoder) line(i int) int {
	if i < len(d.nums) {
		return d.nums[i]
	}
	return 0
}

func (d *headerDecoder) text(i int) string {
	return strings.TrimSpace(d.lines[i])
}

func (d *headerDecoder) fail(i int, field, value string) {
	if d.err != nil {
		return
	}
	d.err = &core.FieldError{
		Kind:   core.ErrInvalidHeader,
		Record: headerRecord,
		Field:  field,
		Value:  value,
		Line:   d.line(i),
	}
}

func (d *headerDecoder) parse(i int, field, token string) float64 {
	v, err := core.ParseFloat(strings.TrimSpace(token), field)
	if err != nil {
		d.fail(i, field, token)
		return 0
	}
	return v
}

func (d *headerDecoder) float(i int, field string) float64 {
	return d.parse(i, field, d.text(i))
}

// integer accepts integral decimals such as "2.00", which some writers emit.
func (d *headerDecoder) integer(i int, field string) int {
	s := d.text(i)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || v != math.Trunc(v) {
		d.fail(i, field, s)
		return 0
	}
	return int(v)
}

func (d *headerDecoder) codeProfile(i int) model.CodeProfile {
	p, err := model.ParseCodeProfile(d.text(i))
	if err != nil {
		if d.err == nil {
			fe := err.(*core.FieldError)
			fe.Record = headerRecord
			fe.Line = d.line(i)
			d.err = fe
		}
		return 0
	}
	return p
}

// length decodes "length" or "length,saw_length".
func (d *headerDecoder) length(i int) (float64, *float64) {
	parts := strings.SplitN(d.text(i), ",", 2)
	length := d.parse(i, "length", parts[0])
	if len(parts) == 1 {
		return length, nil
	}
	saw := d.parse(i, "saw_length", parts[1])
	return length, &saw
}
