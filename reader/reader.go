package reader

import (
	"fmt"
	"io"
	"os"

	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/format"
	"github.com/tsawler/dstv/internal/filters"
	"github.com/tsawler/dstv/model"
)

// Reader holds one decoded DSTV document.
type Reader struct {
	name     string
	text     string
	encoding format.Encoding
	format   format.Format
}

// Open reads and decodes a DSTV file
func Open(filename string) (*Reader, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file: %w", core.ErrIO, err)
	}

	return FromNamedBytes(filename, data)
}

// FromNamedBytes decodes data like FromBytes and records name as its origin.
// The name's extension refines the detected format: the content decides
// whether the document is DSTV, the name only which flavour.
func FromNamedBytes(name string, data []byte) (*Reader, error) {
	r, err := FromBytes(data)
	if err != nil {
		return nil, err
	}
	r.name = name
	if f := format.Detect(name); f.IsDSTV() && r.format.IsDSTV() {
		r.format = f
	}
	return r, nil
}

// NewReader reads the whole of src and decodes it.
func NewReader(src io.Reader) (*Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read input: %w", core.ErrIO, err)
	}
	return FromBytes(data)
}

// FromBytes decodes raw document bytes. Gzip or zlib compressed input is
// decompressed first. See [format.Decode] for the supported encodings.
func FromBytes(data []byte) (*Reader, error) {
	data, _, err := filters.Decompress(data, filters.DefaultLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrIO, err)
	}

	text, enc, err := format.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	return &Reader{text: text, encoding: enc, format: format.DetectFromMagic(data)}, nil
}

// Name returns the name given to Open or FromNamedBytes, or "".
func (r *Reader) Name() string {
	return r.name
}

// Encoding returns the encoding the document was decoded from.
func (r *Reader) Encoding() format.Encoding {
	return r.encoding
}

// Format returns the detected document format. Unknown means the text does
// not open with the ST marker.
func (r *Reader) Format() format.Format {
	return r.format
}

// Text returns the decoded document text.
func (r *Reader) Text() string {
	return r.text
}

// Parse parses the document into a piece. It returns the non-fatal warnings
// collected along the way; on error no piece is returned.
func (r *Reader) Parse() (*model.Piece, []core.Warning, error) {
	return parse(r.text, r.format)
}

// Parse parses decoded DSTV text into a piece.
func Parse(text string) (*model.Piece, []core.Warning, error) {
	return parse(text, format.DetectFromMagic([]byte(text)))
}

func parse(text string, f format.Format) (*model.Piece, []core.Warning, error) {
	warnings := &core.Warnings{}
	if !f.IsDSTV() {
		warnings.Add(1, core.CodeStart, "document does not start with the ST marker")
	}

	seg, err := core.Segment(text, warnings)
	if err != nil {
		return nil, warnings.List(), fmt.Errorf("failed to segment document: %w", err)
	}

	header, err := parseHeader(seg.Header, seg.HeaderNums)
	if err != nil {
		return nil, warnings.List(), fmt.Errorf("failed to parse header: %w", err)
	}

	piece := model.NewPiece()
	piece.Header = header

	for _, block := range seg.Blocks {
		rec, err := dispatch(block, warnings)
		if err != nil {
			return nil, warnings.List(), fmt.Errorf("failed to parse %s block at line %d: %w", block.Code, block.Line, err)
		}
		if rec == nil {
			continue
		}
		piece.AddRecord(rec)
	}

	return piece, warnings.List(), nil
}
