package dstv

import (
	"github.com/tsawler/dstv/layout"
	"github.com/tsawler/dstv/model"
)

// Summary describes a parsed piece without its geometry.
type Summary struct {
	Encoding string         `json:"encoding,omitempty"`
	Format   string         `json:"format,omitempty"`
	Header   HeaderSummary  `json:"header"`
	Records  map[string]int `json:"records"`

	// Faces lists the drawn faces in stacking order
	Faces  []string `json:"faces"`
	Items  int      `json:"items"`
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
}

// HeaderSummary is the JSON view of a model.Header.
type HeaderSummary struct {
	OrderID     string   `json:"order_id"`
	DrawingID   string   `json:"drawing_id"`
	PhaseID     string   `json:"phase_id"`
	PieceID     string   `json:"piece_id"`
	SteelGrade  string   `json:"steel_grade"`
	Quantity    int      `json:"quantity"`
	Profile     string   `json:"profile"`
	CodeProfile string   `json:"code_profile"`
	Length      float64  `json:"length"`
	SawLength   *float64 `json:"saw_length,omitempty"`

	ProfileHeight   float64 `json:"profile_height"`
	FlangeWidth     float64 `json:"flange_width"`
	FlangeThickness float64 `json:"flange_thickness"`
	WebThickness    float64 `json:"web_thickness"`
	Radius          float64 `json:"radius"`
	WeightPerMeter  float64 `json:"weight_per_meter"`
	PaintingSurface float64 `json:"painting_surface_per_meter"`

	Text []string `json:"text,omitempty"`
}

func newSummary(piece *model.Piece, d *layout.Drawing) *Summary {
	h := piece.Header
	s := &Summary{
		Header: HeaderSummary{
			OrderID:         h.OrderID,
			DrawingID:       h.DrawingID,
			PhaseID:         h.PhaseID,
			PieceID:         h.PieceID,
			SteelGrade:      h.SteelGrade,
			Quantity:        h.Quantity,
			Profile:         h.Profile,
			CodeProfile:     h.CodeProfile.Code(),
			Length:          h.Length,
			SawLength:       h.SawLength,
			ProfileHeight:   h.ProfileHeight,
			FlangeWidth:     h.FlangeWidth,
			FlangeThickness: h.FlangeThickness,
			WebThickness:    h.WebThickness,
			Radius:          h.Radius,
			WeightPerMeter:  h.WeightPerMeter,
			PaintingSurface: h.PaintingSurface,
		},
		Records: make(map[string]int),
		Faces:   make([]string, 0, len(d.Faces)),
		Items:   d.ItemCount(),
		Width:   d.Width,
		Height:  d.Height,
	}

	for _, t := range h.Text {
		if t != "" {
			s.Header.Text = append(s.Header.Text, t)
		}
	}
	for kind, n := range piece.CountByKind() {
		s.Records[kind.String()] = n
	}
	for _, g := range d.Faces {
		s.Faces = append(s.Faces, g.Name)
	}
	return s
}
