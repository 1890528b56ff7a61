package contour

import "github.com/tsawler/dstv/model"

// SegmentType defines the type of path segment
type SegmentType int

const (
	// MoveTo starts a new subpath
	MoveTo SegmentType = iota
	// LineTo draws a line to a point
	LineTo
	// QuadTo draws a quadratic Bézier curve
	QuadTo
	// ArcTo draws an elliptical arc
	ArcTo
	// ClosePath closes the current subpath
	ClosePath
)

func (t SegmentType) String() string {
	switch t {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case QuadTo:
		return "QuadTo"
	case ArcTo:
		return "ArcTo"
	case ClosePath:
		return "ClosePath"
	default:
		return "Unknown"
	}
}

// PathSegment represents a single segment of a path
type PathSegment struct {
	Type SegmentType

	// For MoveTo, LineTo and ArcTo: end point
	// For QuadTo: control point, end point
	Points []model.Point

	// Arc parameters, ArcTo only
	RX, RY   float64
	LargeArc bool
	Sweep    bool
}

// End returns the end point of the segment. ClosePath has none.
func (s PathSegment) End() (model.Point, bool) {
	if len(s.Points) == 0 {
		return model.Point{}, false
	}
	return s.Points[len(s.Points)-1], true
}

// Path is an ordered list of drawing commands
type Path struct {
	Segments []PathSegment

	// CurrentPoint is the end of the last segment
	CurrentPoint model.Point

	// SubpathStart is the start of the current subpath (for closepath)
	SubpathStart model.Point

	HasCurrentPoint bool
}

// NewPath creates a new empty path
func NewPath() *Path {
	return &Path{
		Segments: make([]PathSegment, 0),
	}
}

// MoveTo starts a new subpath at the specified point
func (p *Path) MoveTo(x, y float64) {
	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{
		Type:   MoveTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
	p.SubpathStart = pt
	p.HasCurrentPoint = true
}

// LineTo appends a line segment from current point to (x, y)
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint {
		// Treat as moveto if no current point
		p.MoveTo(x, y)
		return
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{
		Type:   LineTo,
		Points: []model.Point{pt},
	})
	p.CurrentPoint = pt
}

// QuadTo appends a quadratic Bézier curve with control point (cx, cy)
// ending at (x, y)
func (p *Path) QuadTo(cx, cy, x, y float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(cx, cy)
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{
		Type:   QuadTo,
		Points: []model.Point{{X: cx, Y: cy}, pt},
	})
	p.CurrentPoint = pt
}

// ArcTo appends an elliptical arc with radii (rx, ry) ending at (x, y).
// The flags select one of the four candidate arcs as in SVG.
func (p *Path) ArcTo(rx, ry float64, largeArc, sweep bool, x, y float64) {
	if !p.HasCurrentPoint {
		p.MoveTo(x, y)
		return
	}

	pt := model.Point{X: x, Y: y}
	p.Segments = append(p.Segments, PathSegment{
		Type:     ArcTo,
		Points:   []model.Point{pt},
		RX:       rx,
		RY:       ry,
		LargeArc: largeArc,
		Sweep:    sweep,
	})
	p.CurrentPoint = pt
}

// ClosePath closes the current subpath
func (p *Path) ClosePath() {
	if !p.HasCurrentPoint {
		return
	}

	p.Segments = append(p.Segments, PathSegment{
		Type: ClosePath,
	})

	// Move current point back to subpath start
	p.CurrentPoint = p.SubpathStart
}

// Clear resets the path
func (p *Path) Clear() {
	p.Segments = p.Segments[:0]
	p.HasCurrentPoint = false
}

// IsEmpty returns true if the path has no segments
func (p *Path) IsEmpty() bool {
	return len(p.Segments) == 0
}

// Count returns the number of segments of type t
func (p *Path) Count(t SegmentType) int {
	n := 0
	for _, s := range p.Segments {
		if s.Type == t {
			n++
		}
	}
	return n
}
