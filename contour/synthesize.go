package contour

import "github.com/tsawler/dstv/model"

// Segment is a straight line between two points
type Segment struct {
	From, To model.Point
}

// Outline is the synthesized geometry of one border
type Outline struct {
	Path *Path

	// Bevels holds one overlay segment per beveled edge
	Bevels []Segment
}

// Synthesize converts the ordered points of a border into a path. The path
// is not closed; border data repeats the first point at the end.
//
// Each edge is shaped by the corner kind of the point it leaves. Corner is
// taken as is, so points should be built with model.NewContourPoint.
func Synthesize(points []model.ContourPoint) Outline {
	out := Outline{Path: NewPath()}

	var prev model.ContourPoint
	for i, cur := range points {
		if i == 0 {
			out.Path.MoveTo(cur.X, cur.Y)
			prev = cur
			continue
		}

		edge(out.Path, prev, cur)
		if prev.Bevel > 0 {
			out.Bevels = append(out.Bevels, Segment{From: prev.Point(), To: cur.Point()})
		}
		prev = cur
	}
	return out
}

// edge appends the edge from prev to cur.
func edge(p *Path, prev, cur model.ContourPoint) {
	switch prev.Corner {
	case model.CornerStraight:
		p.LineTo(cur.X, cur.Y)
		return
	case model.CornerRounded:
		// orientation depends on both points; ties fall through to an arc
		switch {
		case cur.Y > prev.Y && cur.X > prev.X:
			p.QuadTo(cur.X, prev.Y, cur.X, cur.Y)
			return
		case cur.Y > prev.Y && cur.X < prev.X:
			p.QuadTo(prev.X, cur.Y, cur.X, cur.Y)
			return
		case cur.Y < prev.Y && cur.X < prev.X:
			p.QuadTo(cur.X, prev.Y, cur.X, cur.Y)
			return
		}
	}

	r := prev.ArcRadius()
	p.ArcTo(r, r, false, false, cur.X, cur.Y)
}
