package layout

import (
	"fmt"

	"github.com/tsawler/dstv/contour"
	"github.com/tsawler/dstv/model"
)

// ComposerConfig holds configuration options for the face compositor.
type ComposerConfig struct {
	// Faces restricts the drawing to the listed faces. Empty means all.
	Faces []model.Face

	// Bevels enables bevel overlay segments on borders
	Bevels bool
}

// DefaultComposerConfig returns a configuration drawing every face with
// bevel overlays.
func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		Bevels: true,
	}
}

// Item is one record ready to be drawn.
type Item struct {
	Record model.Record

	// Outline is the synthesized contour, borders only
	Outline *contour.Outline
}

// FaceGroup is the sub-drawing of one face.
type FaceGroup struct {
	Face model.Face

	// Name is the group name: bottom, front, top or back
	Name string

	// Offset is the running vertical offset before this face
	Offset float64

	// Shift is the vertical translation applied to the face
	Shift float64

	// Mirror flips the face vertically before the shift
	Mirror bool

	// Items in draw order
	Items []Item
}

// Matrix returns the affine transform from face coordinates to canvas
// coordinates.
func (g FaceGroup) Matrix() model.Matrix {
	if g.Mirror {
		return model.MirrorY().Multiply(model.Translate(0, g.Shift))
	}
	return model.Translate(0, g.Shift)
}

// Transform returns the transform as SVG attribute text.
func (g FaceGroup) Transform() string {
	t := fmt.Sprintf("translate(0,%s)", model.FormatNumber(g.Shift))
	if g.Mirror {
		t += " scale(1,-1)"
	}
	return t
}

// Drawing is a composed multi-face canvas.
type Drawing struct {
	Width  float64
	Height float64

	// Faces holds the non-empty faces in stacking order
	Faces []FaceGroup
}

// Face returns the group of face f, if present.
func (d *Drawing) Face(f model.Face) (FaceGroup, bool) {
	for _, g := range d.Faces {
		if g.Face == f {
			return g, true
		}
	}
	return FaceGroup{}, false
}

// ItemCount returns the number of items across all faces.
func (d *Drawing) ItemCount() int {
	n := 0
	for _, g := range d.Faces {
		n += len(g.Items)
	}
	return n
}

// Composer stacks the faces of a piece into one drawing.
type Composer struct {
	config ComposerConfig
}

// NewComposer creates a composer with default configuration
func NewComposer() *Composer {
	return NewComposerWithConfig(DefaultComposerConfig())
}

// NewComposerWithConfig creates a composer with custom configuration
func NewComposerWithConfig(config ComposerConfig) *Composer {
	return &Composer{config: config}
}

// Compose lays out piece with the default configuration.
func Compose(piece *model.Piece) *Drawing {
	return NewComposer().Compose(piece)
}

// Compose lays out the records of piece. Records are drawn in draw-priority
// order, ties in file order. Faces are stacked Bottom, Front, Top, Behind;
// faces without records take no space.
func (c *Composer) Compose(piece *model.Piece) *Drawing {
	d := &Drawing{Width: piece.Header.Length}

	offset := 0.0
	for _, face := range model.FaceOrder {
		if !c.wants(face) {
			continue
		}
		records := piece.RecordsByFace(face)
		if len(records) == 0 {
			continue
		}

		g := FaceGroup{
			Face:   face,
			Name:   face.GroupName(),
			Offset: offset,
			Shift:  offset,
			Items:  make([]Item, 0, len(records)),
		}
		if face == model.FaceTop {
			g.Shift = offset + piece.Header.FlangeWidth
			g.Mirror = true
		}
		for _, r := range records {
			g.Items = append(g.Items, c.item(r))
		}
		d.Faces = append(d.Faces, g)

		offset += faceHeight(face, piece.Header)
	}

	d.Height = offset
	return d
}

func (c *Composer) wants(face model.Face) bool {
	if len(c.config.Faces) == 0 {
		return true
	}
	for _, f := range c.config.Faces {
		if f == face {
			return true
		}
	}
	return false
}

func (c *Composer) item(r model.Record) Item {
	var points []model.ContourPoint
	switch b := r.(type) {
	case *model.OuterBorder:
		points = b.Contour
	case *model.InnerBorder:
		points = b.Contour
	default:
		return Item{Record: r}
	}

	outline := contour.Synthesize(points)
	if !c.config.Bevels {
		outline.Bevels = nil
	}
	return Item{Record: r, Outline: &outline}
}

// faceHeight is the space a face takes on the canvas.
func faceHeight(face model.Face, h model.Header) float64 {
	switch face {
	case model.FaceBottom, model.FaceTop:
		return h.FlangeWidth
	default:
		return h.ProfileHeight
	}
}
