package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/tsawler/dstv/contour"
	"github.com/tsawler/dstv/layout"
	"github.com/tsawler/dstv/model"
	"github.com/tsawler/dstv/svg"
)

// DefaultWidth is the image width used when Options.Width is zero.
const DefaultWidth = 1200

// DefaultMaxHeight is the height cap used when Options.MaxHeight is zero.
const DefaultMaxHeight = 8192

// Options controls rasterization.
type Options struct {
	// Width of the image in pixels. The height follows the canvas aspect.
	Width int

	// Style supplies the colors. The zero value means svg.DefaultStyle.
	Style *svg.Style

	// Steps is the number of straight pieces per curve. Zero means 16.
	Steps int

	// MaxHeight caps the image height. Taller canvases are scaled down so
	// both dimensions fit. Zero means DefaultMaxHeight.
	MaxHeight int
}

// ErrEmptyCanvas is returned for drawings without width.
var ErrEmptyCanvas = errors.New("preview: canvas has no width")

type palette struct {
	background, outer, inner, stroke, bevel, hole, slot, cut, bend color.Color
}

func newPalette(s svg.Style) (palette, error) {
	var (
		p   palette
		err error
	)
	for _, c := range []struct {
		dst *color.Color
		val string
	}{
		{&p.background, s.Background},
		{&p.outer, s.OuterFill},
		{&p.inner, s.InnerFill},
		{&p.stroke, s.Stroke},
		{&p.bevel, s.BevelStroke},
		{&p.hole, s.HoleFill},
		{&p.slot, s.SlotFill},
		{&p.cut, s.CutStroke},
		{&p.bend, s.BendStroke},
	} {
		if *c.dst, err = parseColor(c.val); err != nil {
			return palette{}, fmt.Errorf("invalid style: %w", err)
		}
	}
	if p.background == nil {
		p.background = color.White
	}
	return p, nil
}

// renderer draws the shapes of one drawing.
type renderer struct {
	dst   *image.RGBA
	z     *vector.Rasterizer
	pal   palette
	style svg.Style
	scale float32
	steps int
	m     f32.Aff3
}

// Render rasterizes d.
func Render(d *layout.Drawing, opts Options) (*image.RGBA, error) {
	if d.Width <= 0 {
		return nil, ErrEmptyCanvas
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Steps <= 0 {
		opts.Steps = 16
	}
	style := svg.DefaultStyle()
	if opts.Style != nil {
		style = *opts.Style
	}
	pal, err := newPalette(style)
	if err != nil {
		return nil, err
	}

	if opts.MaxHeight <= 0 {
		opts.MaxHeight = DefaultMaxHeight
	}
	width, height, scale := fit(d.Width, d.Height, opts.Width, opts.MaxHeight)

	r := &renderer{
		dst:   image.NewRGBA(image.Rect(0, 0, width, height)),
		z:     vector.NewRasterizer(width, height),
		pal:   pal,
		style: style,
		scale: float32(scale),
		steps: opts.Steps,
	}
	draw.Draw(r.dst, r.dst.Bounds(), image.NewUniform(pal.background), image.Point{}, draw.Src)

	for _, g := range d.Faces {
		r.m = toAff3(g.Matrix().Multiply(model.Scale(scale, scale)))
		for _, item := range g.Items {
			r.item(item)
		}
	}
	return r.dst, nil
}

// fit returns the image size and scale for a canvas of w by h units drawn
// width pixels wide, shrinking the scale when the height would exceed
// maxHeight.
func fit(w, h float64, width, maxHeight int) (int, int, float64) {
	scale := float64(width) / w
	// tolerate rounding noise in the scale factor
	height := int(math.Min(math.Ceil(h*scale-1e-9), float64(math.MaxInt32)))
	if height > maxHeight {
		scale = float64(maxHeight) / h
		height = maxHeight
		width = int(math.Ceil(w*scale - 1e-9))
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return width, height, scale
}

// Encode rasterizes d and writes it as PNG.
func Encode(w io.Writer, d *layout.Drawing, opts Options) error {
	img, err := Render(d, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// toAff3 converts a model matrix to row-major f32 form.
func toAff3(m model.Matrix) f32.Aff3 {
	return f32.Aff3{
		float32(m[0]), float32(m[2]), float32(m[4]),
		float32(m[1]), float32(m[3]), float32(m[5]),
	}
}

func (r *renderer) apply(p model.Point) f32.Vec2 {
	x, y := float32(p.X), float32(p.Y)
	return f32.Vec2{
		r.m[0]*x + r.m[1]*y + r.m[2],
		r.m[3]*x + r.m[4]*y + r.m[5],
	}
}

func (r *renderer) item(item layout.Item) {
	switch rec := item.Record.(type) {
	case *model.OuterBorder, *model.InnerBorder:
		fill := r.pal.outer
		if _, inner := rec.(*model.InnerBorder); inner {
			fill = r.pal.inner
		}
		outline := item.Outline
		if outline == nil {
			var pts []model.ContourPoint
			if b, ok := rec.(*model.OuterBorder); ok {
				pts = b.Contour
			} else {
				pts = rec.(*model.InnerBorder).Contour
			}
			o := contour.Synthesize(pts)
			outline = &o
		}
		lines := contour.Flatten(outline.Path, r.steps)
		r.fill(lines, fill)
		r.stroke(lines, r.pal.stroke, r.style.StrokeWidth)
		for _, b := range outline.Bevels {
			r.stroke([]contour.Polyline{{Points: []model.Point{b.From, b.To}}}, r.pal.bevel, r.style.BevelWidth)
		}

	case *model.Hole:
		r.fill(contour.Flatten(contour.Circle(rec.X, rec.Y, rec.Diameter/2), r.steps), r.pal.hole)

	case *model.Slot:
		lines := contour.Flatten(contour.Slot(rec), r.steps)
		r.fill(lines, r.pal.slot)
		r.stroke(lines, r.pal.stroke, r.style.StrokeWidth)

	case *model.Cut:
		end := rec.Start.XY().Add(rec.Normal.XY())
		r.stroke([]contour.Polyline{{Points: []model.Point{rec.Start.XY(), end}}}, r.pal.cut, r.style.StrokeWidth)

	case *model.Bend:
		p := contour.NewPath()
		p.MoveTo(rec.Origin.X, rec.Origin.Y)
		p.ArcTo(rec.Radius, rec.Radius, false, true, rec.Finish.X, rec.Finish.Y)
		r.stroke(contour.Flatten(p, r.steps), r.pal.bend, r.style.StrokeWidth)
	}
}

// fill fills the polylines as one shape with the nonzero rule.
func (r *renderer) fill(lines []contour.Polyline, c color.Color) {
	if c == nil {
		return
	}
	r.z.Reset(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
	r.z.DrawOp = draw.Over
	drawn := false
	for _, l := range lines {
		if len(l.Points) < 3 {
			continue
		}
		p := r.apply(l.Points[0])
		r.z.MoveTo(p[0], p[1])
		for _, q := range l.Points[1:] {
			p = r.apply(q)
			r.z.LineTo(p[0], p[1])
		}
		r.z.ClosePath()
		drawn = true
	}
	if drawn {
		r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
	}
}

// stroke draws every edge of the polylines as a quad of the given width,
// at least one pixel wide.
func (r *renderer) stroke(lines []contour.Polyline, c color.Color, width float64) {
	if c == nil {
		return
	}
	hw := float32(width) * r.scale / 2
	if hw < 0.5 {
		hw = 0.5
	}

	r.z.Reset(r.dst.Bounds().Dx(), r.dst.Bounds().Dy())
	r.z.DrawOp = draw.Over
	drawn := false
	for _, l := range lines {
		pts := l.Points
		if l.Closed && len(pts) > 1 {
			pts = append(pts[:len(pts):len(pts)], pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if r.quad(r.apply(pts[i-1]), r.apply(pts[i]), hw) {
				drawn = true
			}
		}
	}
	if drawn {
		r.z.Draw(r.dst, r.dst.Bounds(), image.NewUniform(c), image.Point{})
	}
}

func (r *renderer) quad(a, b f32.Vec2, hw float32) bool {
	dx, dy := b[0]-a[0], b[1]-a[1]
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return false
	}
	nx, ny := -dy/l*hw, dx/l*hw
	r.z.MoveTo(a[0]+nx, a[1]+ny)
	r.z.LineTo(b[0]+nx, b[1]+ny)
	r.z.LineTo(b[0]-nx, b[1]-ny)
	r.z.LineTo(a[0]-nx, a[1]-ny)
	r.z.ClosePath()
	return true
}
