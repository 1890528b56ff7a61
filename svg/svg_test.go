package svg

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html"

	"github.com/tsawler/dstv/contour"
	"github.com/tsawler/dstv/layout"
	"github.com/tsawler/dstv/model"
)

func testPiece(records ...model.Record) *model.Piece {
	p := model.NewPiece()
	p.Header.Length = 1000
	p.Header.ProfileHeight = 300
	p.Header.FlangeWidth = 150
	for _, r := range records {
		p.AddRecord(r)
	}
	return p
}

func rectangle() *model.OuterBorder {
	return &model.OuterBorder{Contour: []model.ContourPoint{
		model.NewContourPoint(model.FaceFront, 0, 0, 0, 2),
		model.NewContourPoint(model.FaceFront, 1000, 0, 0, 0),
		model.NewContourPoint(model.FaceFront, 1000, 300, 0, 0),
		model.NewContourPoint(model.FaceFront, 0, 300, 0, 0),
	}}
}

// render composes and serializes records, then parses the result back.
func render(t *testing.T, style Style, records ...model.Record) (string, *html.Node) {
	t.Helper()
	var buf bytes.Buffer
	if err := NewWriter(style).Write(&buf, layout.Compose(testPiece(records...))); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	doc, err := html.Parse(strings.NewReader(buf.String()))
	if err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	return buf.String(), doc
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, tag)...)
	}
	return out
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// ============================================================================
// Writer Tests
// ============================================================================

func TestWriteCanvasAndGroups(t *testing.T) {
	_, doc := render(t, DefaultStyle(),
		rectangle(),
		&model.Hole{FaceCode: model.FaceFront, X: 50, Y: 40, Diameter: 22},
		&model.Hole{FaceCode: model.FaceTop, X: 80, Y: 30, Diameter: 18},
	)

	svgs := findAll(doc, "svg")
	if len(svgs) != 1 {
		t.Fatalf("got %d svg elements, want 1", len(svgs))
	}
	root := svgs[0]
	if attr(root, "width") != "1000" || attr(root, "height") != "450" {
		t.Errorf("canvas = %s x %s, want 1000 x 450", attr(root, "width"), attr(root, "height"))
	}
	if attr(root, "viewBox") != "0 0 1000 450" {
		t.Errorf("viewBox = %q", attr(root, "viewBox"))
	}

	groups := findAll(doc, "g")
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if attr(groups[0], "id") != "front" || attr(groups[0], "transform") != "translate(0,0)" {
		t.Errorf("front group = %v", groups[0].Attr)
	}
	if attr(groups[1], "id") != "top" || attr(groups[1], "transform") != "translate(0,450) scale(1,-1)" {
		t.Errorf("top group = %v", groups[1].Attr)
	}
}

func TestWriteBorder(t *testing.T) {
	_, doc := render(t, DefaultStyle(), rectangle())

	paths := findAll(doc, "path")
	if len(paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(paths))
	}
	if d := attr(paths[0], "d"); d != "M0,0 L1000,0 L1000,300 L0,300" {
		t.Errorf("d = %q", d)
	}
	if attr(paths[0], "fill") != "grey" || attr(paths[0], "stroke-width") != "0.5" {
		t.Errorf("border attributes = %v", paths[0].Attr)
	}

	lines := findAll(doc, "line")
	if len(lines) != 1 {
		t.Fatalf("got %d bevel lines, want 1", len(lines))
	}
	if attr(lines[0], "stroke") != "red" || attr(lines[0], "x2") != "1000" {
		t.Errorf("bevel attributes = %v", lines[0].Attr)
	}
}

func TestWriteInnerBorderFill(t *testing.T) {
	inner := &model.InnerBorder{Contour: []model.ContourPoint{
		model.NewContourPoint(model.FaceFront, 10, 10, 0, 0),
		model.NewContourPoint(model.FaceFront, 20, 10, 0, 0),
	}}
	_, doc := render(t, DefaultStyle(), inner)
	paths := findAll(doc, "path")
	if len(paths) != 1 || attr(paths[0], "fill") != "white" {
		t.Errorf("inner border = %v", paths)
	}
}

func TestWriteFeatures(t *testing.T) {
	_, doc := render(t, DefaultStyle(),
		&model.Hole{FaceCode: model.FaceFront, X: 50, Y: 40, Diameter: 22},
		&model.Cut{Start: model.Point3{X: 10, Y: 20}, Normal: model.Point3{X: 5, Y: -5, Z: 1}},
		&model.Bend{Origin: model.Point{}, Finish: model.Point{X: 25, Y: 25}, Angle: 90, Radius: 25},
		&model.Slot{FaceCode: model.FaceFront, X: 100, Y: 50, Diameter: 20, Length: 60},
	)

	circles := findAll(doc, "circle")
	if len(circles) != 1 || attr(circles[0], "r") != "11" || attr(circles[0], "cx") != "50" {
		t.Errorf("circles = %v", circles)
	}

	lines := findAll(doc, "line")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if attr(lines[0], "x2") != "15" || attr(lines[0], "y2") != "15" {
		t.Errorf("cut = %v", lines[0].Attr)
	}

	var bend, slot *html.Node
	for _, p := range findAll(doc, "path") {
		if attr(p, "fill") == "none" {
			bend = p
		} else {
			slot = p
		}
	}
	if bend == nil || attr(bend, "d") != "M0,0 A25 25 0 0 1 25,25" {
		t.Errorf("bend = %v", bend)
	}
	if slot == nil || attr(slot, "d") != "M100,60 L160,60 A10 10 0 0 0 160,40 L100,40 A10 10 0 0 0 100,60 Z" {
		t.Errorf("slot = %v", slot)
	}
}

func TestWriteNumerationEscaped(t *testing.T) {
	out, doc := render(t, DefaultStyle(),
		&model.Numeration{FaceCode: model.FaceFront, X: 10, Y: 20, Angle: 90, Height: 12, Text: `A<B & "C"`},
	)

	if !strings.Contains(out, "A&lt;B &amp; &#34;C&#34;") {
		t.Errorf("label not escaped: %s", out)
	}

	texts := findAll(doc, "text")
	if len(texts) != 1 {
		t.Fatalf("got %d text elements, want 1", len(texts))
	}
	n := texts[0]
	if n.FirstChild == nil || n.FirstChild.Data != `A<B & "C"` {
		t.Errorf("text content = %v", n.FirstChild)
	}
	if attr(n, "transform") != "rotate(90 10 20)" || attr(n, "font-size") != "12" {
		t.Errorf("text attributes = %v", n.Attr)
	}
	if attr(n, "font-family") != "" {
		t.Error("font-family should be omitted by default")
	}
}

func TestWriteDeterministic(t *testing.T) {
	d := layout.Compose(testPiece(rectangle(), &model.Hole{FaceCode: model.FaceTop, X: 1.25, Y: 2, Diameter: 3}))
	a, err := Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("identical drawings produced different output")
	}
}

func TestWriteEmptyDrawing(t *testing.T) {
	out, doc := render(t, DefaultStyle())
	if len(findAll(doc, "g")) != 0 {
		t.Errorf("empty drawing has groups: %s", out)
	}
	if !strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="1000" height="0"`) {
		t.Errorf("unexpected output %s", out)
	}
}

func TestWriteBackground(t *testing.T) {
	style := DefaultStyle()
	style.Background = "#eeeeee"
	style.FontFamily = "monospace"
	_, doc := render(t, style, &model.Numeration{FaceCode: model.FaceFront, Text: "P1"})

	rects := findAll(doc, "rect")
	if len(rects) != 1 || attr(rects[0], "fill") != "#eeeeee" {
		t.Errorf("rects = %v", rects)
	}
	if attr(findAll(doc, "text")[0], "font-family") != "monospace" {
		t.Error("font-family not applied")
	}
}

// ============================================================================
// Path Data Tests
// ============================================================================

func TestPathData(t *testing.T) {
	p := contour.NewPath()
	p.MoveTo(0, 0)
	p.QuadTo(10, 0, 10, 10.5)
	p.ArcTo(5, 5, true, false, -2.25, 0)
	p.ClosePath()

	want := "M0,0 Q10,0 10,10.5 A5 5 0 1 0 -2.25,0 Z"
	if got := pathData(p); got != want {
		t.Errorf("pathData() = %q, want %q", got, want)
	}
}

// ============================================================================
// Style Tests
// ============================================================================

func TestLoadStyle(t *testing.T) {
	style, err := LoadStyle(strings.NewReader("outer_fill: \"#cccccc\"\nstroke_width: 1.5\n"))
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if style.OuterFill != "#cccccc" || style.StrokeWidth != 1.5 {
		t.Errorf("overrides not applied: %+v", style)
	}
	if style.HoleFill != "white" || style.BevelStroke != "red" {
		t.Errorf("defaults lost: %+v", style)
	}
}

func TestLoadStyleEmpty(t *testing.T) {
	style, err := LoadStyle(strings.NewReader(""))
	if err != nil {
		t.Fatalf("LoadStyle() error = %v", err)
	}
	if style != DefaultStyle() {
		t.Errorf("empty style = %+v, want defaults", style)
	}
}

func TestLoadStyleUnknownKey(t *testing.T) {
	if _, err := LoadStyle(strings.NewReader("outer_colour: red\n")); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLoadStyleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte("bevel_stroke: blue\n"), 0644); err != nil {
		t.Fatal(err)
	}
	style, err := LoadStyleFile(path)
	if err != nil {
		t.Fatalf("LoadStyleFile() error = %v", err)
	}
	if style.BevelStroke != "blue" {
		t.Errorf("BevelStroke = %q", style.BevelStroke)
	}

	if _, err := LoadStyleFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
