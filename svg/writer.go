package svg

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/dstv/contour"
	"github.com/tsawler/dstv/layout"
	"github.com/tsawler/dstv/model"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Writer serializes drawings with a fixed style.
type Writer struct {
	style Style
}

// NewWriter creates a writer using style
func NewWriter(style Style) *Writer {
	return &Writer{style: style}
}

// Write serializes d with the default style.
func Write(w io.Writer, d *layout.Drawing) error {
	return NewWriter(DefaultStyle()).Write(w, d)
}

// Marshal returns d serialized with the default style.
func Marshal(d *layout.Drawing) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write serializes d to w.
func (wr *Writer) Write(w io.Writer, d *layout.Drawing) error {
	if err := html.Render(w, wr.Node(d)); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}
	return nil
}

// Node builds the <svg> element tree for d.
func (wr *Writer) Node(d *layout.Drawing) *html.Node {
	width, height := num(d.Width), num(d.Height)
	root := element("svg",
		"xmlns", Namespace,
		"width", width,
		"height", height,
		"viewBox", "0 0 "+width+" "+height,
	)

	if wr.style.Background != "" {
		root.AppendChild(element("rect",
			"width", width,
			"height", height,
			"fill", wr.style.Background,
		))
	}

	for _, g := range d.Faces {
		group := element("g", "id", g.Name, "transform", g.Transform())
		for _, item := range g.Items {
			for _, n := range wr.item(item) {
				group.AppendChild(n)
			}
		}
		root.AppendChild(group)
	}
	return root
}

// item renders one record. Borders may produce several elements.
func (wr *Writer) item(item layout.Item) []*html.Node {
	s := wr.style
	switch r := item.Record.(type) {
	case *model.OuterBorder:
		return wr.border(item.Outline, r.Contour, s.OuterFill)

	case *model.InnerBorder:
		return wr.border(item.Outline, r.Contour, s.InnerFill)

	case *model.Hole:
		return []*html.Node{element("circle",
			"cx", num(r.X),
			"cy", num(r.Y),
			"r", num(r.Diameter/2),
			"fill", s.HoleFill,
		)}

	case *model.Slot:
		return []*html.Node{element("path",
			"d", pathData(contour.Slot(r)),
			"fill", s.SlotFill,
			"stroke", s.Stroke,
			"stroke-width", num(s.StrokeWidth),
		)}

	case *model.Cut:
		end := r.Start.XY().Add(r.Normal.XY())
		return []*html.Node{element("line",
			"x1", num(r.Start.X),
			"y1", num(r.Start.Y),
			"x2", num(end.X),
			"y2", num(end.Y),
			"stroke", s.CutStroke,
		)}

	case *model.Bend:
		p := contour.NewPath()
		p.MoveTo(r.Origin.X, r.Origin.Y)
		p.ArcTo(r.Radius, r.Radius, false, true, r.Finish.X, r.Finish.Y)
		return []*html.Node{element("path",
			"d", pathData(p),
			"stroke", s.BendStroke,
			"fill", "none",
		)}

	case *model.Numeration:
		x, y := num(r.X), num(r.Y)
		attrs := []string{
			"x", x,
			"y", y,
			"transform", "rotate(" + num(r.Angle) + " " + x + " " + y + ")",
			"font-size", num(r.Height),
			"fill", s.TextFill,
		}
		if s.FontFamily != "" {
			attrs = append(attrs, "font-family", s.FontFamily)
		}
		n := element("text", attrs...)
		n.AppendChild(&html.Node{Type: html.TextNode, Data: r.Text})
		return []*html.Node{n}
	}
	return nil
}

func (wr *Writer) border(outline *contour.Outline, points []model.ContourPoint, fill string) []*html.Node {
	if outline == nil {
		o := contour.Synthesize(points)
		outline = &o
	}

	s := wr.style
	nodes := []*html.Node{element("path",
		"d", pathData(outline.Path),
		"fill", fill,
		"stroke", s.Stroke,
		"stroke-width", num(s.StrokeWidth),
	)}
	for _, b := range outline.Bevels {
		nodes = append(nodes, element("line",
			"x1", num(b.From.X),
			"y1", num(b.From.Y),
			"x2", num(b.To.X),
			"y2", num(b.To.Y),
			"stroke", s.BevelStroke,
			"stroke-width", num(s.BevelWidth),
		))
	}
	return nodes
}

// element creates an element node from alternating attribute keys and
// values.
func element(tag string, kv ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}
	for i := 0; i+1 < len(kv); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return n
}
