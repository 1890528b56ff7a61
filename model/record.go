package model

import "math"

// RecordKind represents the type of a piece record
type RecordKind int

const (
	KindOuterBorder RecordKind = iota
	KindInnerBorder
	KindCut
	KindBend
	KindHole
	KindSlot
	KindNumeration
)

func (k RecordKind) String() string {
	switch k {
	case KindOuterBorder:
		return "OuterBorder"
	case KindInnerBorder:
		return "InnerBorder"
	case KindCut:
		return "Cut"
	case KindBend:
		return "Bend"
	case KindHole:
		return "Hole"
	case KindSlot:
		return "Slot"
	case KindNumeration:
		return "Numeration"
	default:
		return "Unknown"
	}
}

// Draw-priority indexes. Lower values are drawn first.
const (
	ZOuterBorder = 0
	ZInnerBorder = 1
	ZFeature     = 2
	ZLabel       = 3
)

// Record is one geometry or annotation entry of a piece. The set of
// implementations is closed: OuterBorder, InnerBorder, Cut, Bend, Hole, Slot
// and Numeration.
type Record interface {
	Kind() RecordKind
	Face() Face
	ZIndex() int

	record()
}

// CornerKind classifies the edge leaving a contour point.
type CornerKind int

const (
	// CornerStraight is a straight edge (radius 0).
	CornerStraight CornerKind = iota
	// CornerRounded is a rounded corner (radius > 0).
	CornerRounded
	// CornerArc is a circular arc (radius < 0).
	CornerArc
)

func (c CornerKind) String() string {
	switch c {
	case CornerRounded:
		return "Rounded"
	case CornerArc:
		return "Arc"
	default:
		return "Straight"
	}
}

// ContourPoint is one vertex of a border. Radius and Corner describe the
// edge from this point to the next one, not the point itself.
type ContourPoint struct {
	Face   Face
	X, Y   float64
	Radius float64 // signed, as written in the file
	Corner CornerKind
	Bevel  float64
}

// NewContourPoint builds a point and classifies its corner from the sign of
// radius.
func NewContourPoint(face Face, x, y, radius, bevel float64) ContourPoint {
	corner := CornerStraight
	switch {
	case radius > 0:
		corner = CornerRounded
	case radius < 0:
		corner = CornerArc
	}
	return ContourPoint{Face: face, X: x, Y: y, Radius: radius, Corner: corner, Bevel: bevel}
}

// Point returns the coordinates of the contour point
func (p ContourPoint) Point() Point { return Point{X: p.X, Y: p.Y} }

// ArcRadius returns the unsigned radius used when the edge is drawn as an arc
func (p ContourPoint) ArcRadius() float64 { return math.Abs(p.Radius) }

// OuterBorder is the outer contour of one face
type OuterBorder struct {
	Contour []ContourPoint
}

func (b *OuterBorder) Kind() RecordKind { return KindOuterBorder }
func (b *OuterBorder) Face() Face       { return contourFace(b.Contour) }
func (b *OuterBorder) ZIndex() int      { return ZOuterBorder }
func (b *OuterBorder) record()          {}

// InnerBorder is an inner cutout contour
type InnerBorder struct {
	Contour []ContourPoint
}

func (b *InnerBorder) Kind() RecordKind { return KindInnerBorder }
func (b *InnerBorder) Face() Face       { return contourFace(b.Contour) }
func (b *InnerBorder) ZIndex() int      { return ZInnerBorder }
func (b *InnerBorder) record()          {}

func contourFace(c []ContourPoint) Face {
	if len(c) == 0 {
		return FaceFront
	}
	return c[0].Face
}

// Cut is a straight cut given by a start point and a normal vector.
// Cuts are always drawn on the top face.
type Cut struct {
	Start  Point3
	Normal Point3
}

func (c *Cut) Kind() RecordKind { return KindCut }
func (c *Cut) Face() Face       { return FaceTop }
func (c *Cut) ZIndex() int      { return ZFeature }
func (c *Cut) record()          {}

// Bend is a circular arc from Origin to Finish. Bends are always drawn on
// the top face.
type Bend struct {
	Origin Point
	Finish Point
	Angle  float64 // degrees
	Radius float64
}

func (b *Bend) Kind() RecordKind { return KindBend }
func (b *Bend) Face() Face       { return FaceTop }
func (b *Bend) ZIndex() int      { return ZFeature }
func (b *Bend) record()          {}

// Hole is a round hole
type Hole struct {
	FaceCode Face
	X, Y     float64
	Diameter float64
	Depth    float64 // 0 means through
}

func (h *Hole) Kind() RecordKind { return KindHole }
func (h *Hole) Face() Face       { return h.FaceCode }
func (h *Hole) ZIndex() int      { return ZFeature }
func (h *Hole) record()          {}

// Slot is an elongated hole: a hole of Diameter swept by (Length, Width)
// rotated by Angle degrees.
type Slot struct {
	FaceCode Face
	X, Y     float64
	Diameter float64
	Depth    float64
	Length   float64
	Width    float64
	Angle    float64
}

func (s *Slot) Kind() RecordKind { return KindSlot }
func (s *Slot) Face() Face       { return s.FaceCode }
func (s *Slot) ZIndex() int      { return ZFeature }
func (s *Slot) record()          {}

// Numeration is a text label marked on the piece
type Numeration struct {
	FaceCode Face
	X, Y     float64
	Angle    float64 // degrees
	Height   float64 // letter height
	Text     string
}

func (n *Numeration) Kind() RecordKind { return KindNumeration }
func (n *Numeration) Face() Face       { return n.FaceCode }
func (n *Numeration) ZIndex() int      { return ZLabel }
func (n *Numeration) record()          {}
