package model

import (
	"errors"
	"math"
	"testing"

	"github.com/tsawler/dstv/core"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{1, 2}.Add(Point{10, -5})
	if got != (Point{11, -3}) {
		t.Errorf("Add() = %v, want {11 -3}", got)
	}
}

func TestPoint3XY(t *testing.T) {
	got := Point3{1, 2, 3}.XY()
	if got != (Point{1, 2}) {
		t.Errorf("XY() = %v, want {1 2}", got)
	}
}

// ============================================================================
// Matrix Tests
// ============================================================================

func TestMatrixTransform(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		p    Point
		want Point
	}{
		{"identity", Identity(), Point{3, 4}, Point{3, 4}},
		{"translate", Translate(10, 20), Point{3, 4}, Point{13, 24}},
		{"scale", Scale(2, 3), Point{3, 4}, Point{6, 12}},
		{"mirror", MirrorY(), Point{3, 4}, Point{3, -4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Transform(tt.p)
			if got != tt.want {
				t.Errorf("Transform() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// mirror first, then shift down: y -> t - y
	m := MirrorY().Multiply(Translate(0, 100))
	got := m.Transform(Point{5, 30})
	if got != (Point{5, 70}) {
		t.Errorf("Transform() = %v, want {5 70}", got)
	}

	// shift first, then mirror: y -> -(y + t)
	m = Translate(0, 100).Multiply(MirrorY())
	got = m.Transform(Point{5, 30})
	if got != (Point{5, -130}) {
		t.Errorf("Transform() = %v, want {5 -130}", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{1, "1"},
		{-2.5, "-2.5"},
		{6236.88, "6236.88"},
		{0.1, "0.1"},
		{1000000, "1000000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatNumber(tt.in); got != tt.want {
				t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// ============================================================================
// Face Tests
// ============================================================================

func TestParseFace(t *testing.T) {
	tests := []struct {
		code  string
		want  Face
		group string
	}{
		{"v", FaceFront, "front"},
		{"o", FaceTop, "top"},
		{"u", FaceBottom, "bottom"},
		{"h", FaceBehind, "back"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, err := ParseFace(tt.code)
			if err != nil {
				t.Fatalf("ParseFace(%q) error = %v", tt.code, err)
			}
			if got != tt.want {
				t.Errorf("ParseFace(%q) = %v, want %v", tt.code, got, tt.want)
			}
			if got.Code() != tt.code {
				t.Errorf("Code() = %q, want %q", got.Code(), tt.code)
			}
			if got.GroupName() != tt.group {
				t.Errorf("GroupName() = %q, want %q", got.GroupName(), tt.group)
			}
		})
	}
}

func TestParseFaceInvalid(t *testing.T) {
	for _, code := range []string{"x", "", "V", "10.0"} {
		_, err := ParseFace(code)
		if !errors.Is(err, core.ErrInvalidFaceCode) {
			t.Errorf("ParseFace(%q) error = %v, want ErrInvalidFaceCode", code, err)
		}
		if IsFace(code) {
			t.Errorf("IsFace(%q) = true", code)
		}
	}
}

func TestFaceOrder(t *testing.T) {
	want := []Face{FaceBottom, FaceFront, FaceTop, FaceBehind}
	if len(FaceOrder) != len(want) {
		t.Fatalf("len(FaceOrder) = %d", len(FaceOrder))
	}
	for i := range want {
		if FaceOrder[i] != want[i] {
			t.Errorf("FaceOrder[%d] = %v, want %v", i, FaceOrder[i], want[i])
		}
	}
}

// ============================================================================
// Header Tests
// ============================================================================

func TestParseCodeProfile(t *testing.T) {
	for _, code := range []string{"I", "L", "U", "B", "RU", "RO", "M", "C", "T", "SO"} {
		p, err := ParseCodeProfile(code)
		if err != nil {
			t.Errorf("ParseCodeProfile(%q) error = %v", code, err)
			continue
		}
		if p.Code() != code {
			t.Errorf("Code() = %q, want %q", p.Code(), code)
		}
	}

	if p, _ := ParseCodeProfile(" B "); p != ProfileB {
		t.Errorf("ParseCodeProfile(\" B \") = %v, want ProfileB", p)
	}
	if ProfileB.String() != "Sheets, Plate, teared sheets, etc." {
		t.Errorf("ProfileB.String() = %q", ProfileB.String())
	}
}

func TestParseCodeProfileInvalid(t *testing.T) {
	_, err := ParseCodeProfile("X")
	if !errors.Is(err, core.ErrInvalidProfileTag) {
		t.Fatalf("expected ErrInvalidProfileTag, got %v", err)
	}
}

// ============================================================================
// Record Tests
// ============================================================================

func TestNewContourPointCorner(t *testing.T) {
	tests := []struct {
		radius float64
		want   CornerKind
	}{
		{0, CornerStraight},
		{10, CornerRounded},
		{-10, CornerArc},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			p := NewContourPoint(FaceFront, 1, 2, tt.radius, 0)
			if p.Corner != tt.want {
				t.Errorf("Corner = %v, want %v", p.Corner, tt.want)
			}
			if p.ArcRadius() != math.Abs(tt.radius) {
				t.Errorf("ArcRadius() = %v", p.ArcRadius())
			}
		})
	}
}

func TestRecordFacesAndZIndex(t *testing.T) {
	tests := []struct {
		name string
		r    Record
		kind RecordKind
		face Face
		z    int
	}{
		{"outer", &OuterBorder{Contour: []ContourPoint{NewContourPoint(FaceBottom, 0, 0, 0, 0)}}, KindOuterBorder, FaceBottom, 0},
		{"outer empty", &OuterBorder{}, KindOuterBorder, FaceFront, 0},
		{"inner", &InnerBorder{Contour: []ContourPoint{NewContourPoint(FaceTop, 0, 0, 0, 0)}}, KindInnerBorder, FaceTop, 1},
		{"cut", &Cut{}, KindCut, FaceTop, 2},
		{"bend", &Bend{}, KindBend, FaceTop, 2},
		{"hole", &Hole{FaceCode: FaceBehind}, KindHole, FaceBehind, 2},
		{"slot", &Slot{FaceCode: FaceBottom}, KindSlot, FaceBottom, 2},
		{"numeration", &Numeration{FaceCode: FaceFront}, KindNumeration, FaceFront, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.r.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.r.Kind(), tt.kind)
			}
			if tt.r.Face() != tt.face {
				t.Errorf("Face() = %v, want %v", tt.r.Face(), tt.face)
			}
			if tt.r.ZIndex() != tt.z {
				t.Errorf("ZIndex() = %d, want %d", tt.r.ZIndex(), tt.z)
			}
		})
	}
}

// ============================================================================
// Piece Tests
// ============================================================================

func TestPieceSortedRecordsStable(t *testing.T) {
	p := NewPiece()
	h1 := &Hole{X: 1}
	label := &Numeration{Text: "A"}
	inner := &InnerBorder{}
	h2 := &Hole{X: 2}
	outer := &OuterBorder{}
	cut := &Cut{}
	for _, r := range []Record{h1, label, inner, h2, outer, cut} {
		p.AddRecord(r)
	}

	got := p.SortedRecords()
	want := []Record{outer, inner, h1, h2, cut, label}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedRecords()[%d] = %v, want %v", i, got[i].Kind(), want[i].Kind())
		}
	}

	// file order is untouched
	if p.Records[0] != h1 {
		t.Error("SortedRecords() modified the piece")
	}
}

func TestPieceRecordsByFace(t *testing.T) {
	p := NewPiece()
	p.AddRecord(&Hole{FaceCode: FaceFront})
	p.AddRecord(&Cut{})
	p.AddRecord(&Hole{FaceCode: FaceTop})

	if n := len(p.RecordsByFace(FaceTop)); n != 2 {
		t.Errorf("RecordsByFace(Top) = %d records, want 2", n)
	}

	label := &Numeration{FaceCode: FaceTop}
	p.AddRecord(label)
	border := &OuterBorder{Contour: []ContourPoint{NewContourPoint(FaceTop, 0, 0, 0, 0)}}
	p.AddRecord(border)
	top := p.RecordsByFace(FaceTop)
	if len(top) != 4 || top[0] != border || top[3] != label {
		t.Errorf("RecordsByFace(Top) is not in draw order: %v", top)
	}
	if n := len(p.RecordsByFace(FaceBehind)); n != 0 {
		t.Errorf("RecordsByFace(Behind) = %d records, want 0", n)
	}

	counts := p.CountByKind()
	if counts[KindHole] != 2 || counts[KindCut] != 1 {
		t.Errorf("CountByKind() = %v", counts)
	}
}
