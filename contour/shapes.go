package contour

import (
	"math"

	"github.com/tsawler/dstv/model"
)

// Circle returns a closed path of two half arcs around (cx, cy).
func Circle(cx, cy, r float64) *Path {
	p := NewPath()
	p.MoveTo(cx-r, cy)
	p.ArcTo(r, r, false, false, cx+r, cy)
	p.ArcTo(r, r, false, false, cx-r, cy)
	p.ClosePath()
	return p
}

// SlotAxis returns the two centers of a slot's rounded ends. The second
// center is offset from the first by (Length, Width) rotated by Angle
// degrees.
func SlotAxis(s *model.Slot) (model.Point, model.Point) {
	a := s.Angle * math.Pi / 180
	sin, cos := math.Sincos(a)
	start := model.Point{X: s.X, Y: s.Y}
	end := start.Add(model.Point{
		X: s.Length*cos - s.Width*sin,
		Y: s.Length*sin + s.Width*cos,
	})
	return start, end
}

// Slot returns the closed outline of a slot: two half circles of the slot
// diameter joined by straight sides. A slot without elongation is a circle.
func Slot(s *model.Slot) *Path {
	r := s.Diameter / 2
	c0, c1 := SlotAxis(s)
	length := c0.Distance(c1)
	if length == 0 {
		return Circle(c0.X, c0.Y, r)
	}

	// unit normal to the axis
	nx := -(c1.Y - c0.Y) / length * r
	ny := (c1.X - c0.X) / length * r

	p := NewPath()
	p.MoveTo(c0.X+nx, c0.Y+ny)
	p.LineTo(c1.X+nx, c1.Y+ny)
	p.ArcTo(r, r, false, false, c1.X-nx, c1.Y-ny)
	p.LineTo(c0.X-nx, c0.Y-ny)
	p.ArcTo(r, r, false, false, c0.X+nx, c0.Y+ny)
	p.ClosePath()
	return p
}
