package contour

import (
	"math"

	"github.com/tsawler/dstv/model"
)

// Polyline is a flattened subpath
type Polyline struct {
	Points []model.Point
	Closed bool
}

// Flatten approximates p with polylines, one per subpath. Curves and arcs
// are split into steps straight pieces.
func Flatten(p *Path, steps int) []Polyline {
	if steps < 1 {
		steps = 1
	}

	var (
		out []Polyline
		cur *Polyline
	)
	last := model.Point{}
	for _, seg := range p.Segments {
		switch seg.Type {
		case MoveTo:
			out = append(out, Polyline{Points: []model.Point{seg.Points[0]}})
			cur = &out[len(out)-1]
			last = seg.Points[0]
			continue
		case ClosePath:
			if cur != nil {
				cur.Closed = true
				if len(cur.Points) > 0 {
					last = cur.Points[0]
				}
			}
			continue
		}

		if cur == nil {
			out = append(out, Polyline{Points: []model.Point{last}})
			cur = &out[len(out)-1]
		}

		switch seg.Type {
		case LineTo:
			cur.Points = append(cur.Points, seg.Points[0])
		case QuadTo:
			cur.Points = append(cur.Points, quadPoints(last, seg.Points[0], seg.Points[1], steps)...)
		case ArcTo:
			cur.Points = append(cur.Points, arcPoints(last, seg, steps)...)
		}
		last, _ = seg.End()
	}
	return out
}

// quadPoints samples a quadratic Bézier curve, excluding its start point.
func quadPoints(p0, c, p1 model.Point, steps int) []model.Point {
	pts := make([]model.Point, 0, steps)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		u := 1 - t
		pts = append(pts, model.Point{
			X: u*u*p0.X + 2*u*t*c.X + t*t*p1.X,
			Y: u*u*p0.Y + 2*u*t*c.Y + t*t*p1.Y,
		})
	}
	return pts
}

// arcPoints samples an axis-aligned SVG arc from p0, excluding p0. Radii too
// small to reach the end point are scaled up as SVG renderers do.
func arcPoints(p0 model.Point, seg PathSegment, steps int) []model.Point {
	p1 := seg.Points[0]
	rx, ry := math.Abs(seg.RX), math.Abs(seg.RY)
	if rx == 0 || ry == 0 || p0 == p1 {
		return []model.Point{p1}
	}

	cx, cy, theta, delta, rx, ry := arcCenter(p0, p1, rx, ry, seg.LargeArc, seg.Sweep)

	pts := make([]model.Point, 0, steps)
	for i := 1; i < steps; i++ {
		a := theta + delta*float64(i)/float64(steps)
		pts = append(pts, model.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)})
	}
	// land exactly on the end point
	return append(pts, p1)
}

// arcCenter converts endpoint arc parameters to center form. It returns the
// center, start angle, sweep angle and the possibly scaled radii.
func arcCenter(p0, p1 model.Point, rx, ry float64, large, sweep bool) (cx, cy, theta, delta, rxOut, ryOut float64) {
	x1 := (p0.X - p1.X) / 2
	y1 := (p0.Y - p1.Y) / 2

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	if num < 0 {
		num = 0
	}
	coef := math.Sqrt(num / (rx*rx*y1*y1 + ry*ry*x1*x1))
	if large == sweep {
		coef = -coef
	}
	cxp := coef * rx * y1 / ry
	cyp := -coef * ry * x1 / rx

	cx = cxp + (p0.X+p1.X)/2
	cy = cyp + (p0.Y+p1.Y)/2

	theta = math.Atan2((y1-cyp)/ry, (x1-cxp)/rx)
	end := math.Atan2((-y1-cyp)/ry, (-x1-cxp)/rx)
	delta = end - theta
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return cx, cy, theta, delta, rx, ry
}
