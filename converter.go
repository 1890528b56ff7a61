package dstv

import (
	"bytes"
	"context"
	"fmt"

	"github.com/tsawler/dstv/internal/source"
	"github.com/tsawler/dstv/layout"
	"github.com/tsawler/dstv/model"
	"github.com/tsawler/dstv/preview"
	"github.com/tsawler/dstv/reader"
	"github.com/tsawler/dstv/svg"
)

// Fetcher loads the raw bytes of a document from a location such as a
// local path or an s3:// URL.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Converter provides a fluent interface for parsing a DSTV document and
// rendering it. Each configuration method returns a new Converter instance,
// making it safe for concurrent use and allowing method chaining.
type Converter struct {
	// Source
	location string
	data     []byte
	hasData  bool
	fetcher  Fetcher
	ctx      context.Context

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Converter with a deep copy of options.
// The source bytes are never modified, so they are shared.
func (c *Converter) clone() *Converter {
	return &Converter{
		location: c.location,
		data:     c.data,
		hasData:  c.hasData,
		fetcher:  c.fetcher,
		ctx:      c.ctx,
		options:  c.options.clone(),
		err:      c.err,
	}
}

func (c *Converter) fetchContext() context.Context {
	if c.ctx == nil {
		return context.Background()
	}
	return c.ctx
}

// open fetches and decodes the source document.
func (c *Converter) open() (*reader.Reader, error) {
	if c.hasData {
		return reader.FromBytes(c.data)
	}
	if c.location == "" {
		return nil, fmt.Errorf("%w: no input specified", ErrIO)
	}

	f := c.fetcher
	if f == nil {
		f = source.NewRouter(source.S3Config{})
	}
	data, err := f.Fetch(c.fetchContext(), c.location)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", c.location, err)
	}

	return reader.FromNamedBytes(c.location, data)
}

// ============================================================================
// Configuration Methods (return new Converter instances)
// ============================================================================

// Faces restricts the drawing to the given faces. Calling it with no
// arguments selects all faces again.
//
// Example:
//
//	out, _, err := dstv.Open("part.nc1").Faces(model.FaceFront).SVG()
func (c *Converter) Faces(faces ...model.Face) *Converter {
	newConv := c.clone()
	if len(faces) == 0 {
		newConv.options.faces = nil
		return newConv
	}
	newConv.options.faces = append([]model.Face(nil), faces...)
	return newConv
}

// WithoutBevels disables the bevel overlay lines drawn along borders.
func (c *Converter) WithoutBevels() *Converter {
	newConv := c.clone()
	newConv.options.bevels = false
	return newConv
}

// Style sets the colors and widths used by SVG() and PNG().
//
// Example:
//
//	style, err := svg.LoadStyleFile("style.yaml")
//	out, _, err := dstv.Open("part.nc1").Style(style).SVG()
func (c *Converter) Style(style svg.Style) *Converter {
	newConv := c.clone()
	newConv.options.style = style
	return newConv
}

// Source sets the fetcher used to load the location given to Open. It has
// no effect on converters created from bytes or readers.
func (c *Converter) Source(f Fetcher) *Converter {
	newConv := c.clone()
	newConv.fetcher = f
	return newConv
}

// Context sets the context used while fetching the document.
func (c *Converter) Context(ctx context.Context) *Converter {
	newConv := c.clone()
	newConv.ctx = ctx
	return newConv
}

// ============================================================================
// Terminal Operations (parse and render)
// ============================================================================

// Piece parses the document and returns the header and records.
//
// Returns the parsed piece, any warnings encountered during parsing, and an
// error if parsing failed. Warnings indicate non-fatal issues (e.g. an
// unknown block was dropped) where parsing succeeded but the piece may be
// incomplete.
//
// Example:
//
//	piece, warnings, err := dstv.Open("part.nc1").Piece()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dstv.FormatWarnings(warnings))
//	}
func (c *Converter) Piece() (*model.Piece, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	r, err := c.open()
	if err != nil {
		return nil, nil, err
	}
	return r.Parse()
}

// Drawing parses the document and composes the selected faces into one
// canvas.
func (c *Converter) Drawing() (*layout.Drawing, []Warning, error) {
	piece, warnings, err := c.Piece()
	if err != nil {
		return nil, warnings, err
	}
	return c.compose(piece), warnings, nil
}

// SVG parses the document and returns it as an SVG drawing.
//
// Example:
//
//	out, _, err := dstv.Open("part.nc1").SVG()
//	os.WriteFile("part.svg", out, 0o644)
func (c *Converter) SVG() ([]byte, []Warning, error) {
	d, warnings, err := c.Drawing()
	if err != nil {
		return nil, warnings, err
	}

	var buf bytes.Buffer
	if err := svg.NewWriter(c.options.style).Write(&buf, d); err != nil {
		return nil, warnings, fmt.Errorf("failed to write svg: %w", err)
	}
	return buf.Bytes(), warnings, nil
}

// PNG parses the document and returns a raster preview of the given width
// in pixels. A width of 0 uses preview.DefaultWidth.
func (c *Converter) PNG(width int) ([]byte, []Warning, error) {
	d, warnings, err := c.Drawing()
	if err != nil {
		return nil, warnings, err
	}

	style := c.options.style
	var buf bytes.Buffer
	if err := preview.Encode(&buf, d, preview.Options{Width: width, Style: &style}); err != nil {
		return nil, warnings, fmt.Errorf("failed to render preview: %w", err)
	}
	return buf.Bytes(), warnings, nil
}

// Summary parses the document and describes its header, record counts and
// canvas.
//
// Example:
//
//	s, _, err := dstv.Open("part.nc1").Summary()
//	fmt.Println(s.Header.PieceID, s.Records["Hole"])
func (c *Converter) Summary() (*Summary, []Warning, error) {
	if c.err != nil {
		return nil, nil, c.err
	}

	r, err := c.open()
	if err != nil {
		return nil, nil, err
	}
	piece, warnings, err := r.Parse()
	if err != nil {
		return nil, warnings, err
	}

	s := newSummary(piece, c.compose(piece))
	s.Encoding = r.Encoding().String()
	s.Format = r.Format().String()
	return s, warnings, nil
}

// ============================================================================
// Helpers
// ============================================================================

func (c *Converter) compose(piece *model.Piece) *layout.Drawing {
	composer := layout.NewComposerWithConfig(layout.ComposerConfig{
		Faces:  c.options.faces,
		Bevels: c.options.bevels,
	})
	return composer.Compose(piece)
}
