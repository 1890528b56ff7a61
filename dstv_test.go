package dstv

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/dstv/model"
	"github.com/tsawler/dstv/svg"
)

const beamPath = "testdata/beam.nc1"

type mapFetcher map[string][]byte

func (m mapFetcher) Fetch(_ context.Context, location string) ([]byte, error) {
	data, ok := m[location]
	if !ok {
		return nil, ErrIO
	}
	return data, nil
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "nonexistent.nc1")).SVG()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.Equal(t, "io", ErrorKind(err))
}

func TestOpenNoInput(t *testing.T) {
	_, _, err := Open("").Piece()
	assert.ErrorIs(t, err, ErrIO)
}

func TestPiece(t *testing.T) {
	piece, warnings, err := Open(beamPath).Piece()
	require.NoError(t, err)

	assert.Equal(t, "B_1", piece.Header.PieceID)
	assert.InDelta(t, 6236.88, piece.Header.Length, 1e-9)

	counts := piece.CountByKind()
	assert.Equal(t, 1, counts[model.KindOuterBorder])
	assert.Equal(t, 3, counts[model.KindHole])
	assert.Equal(t, 1, counts[model.KindNumeration])

	require.Len(t, warnings, 1)
	assert.Equal(t, "PU", warnings[0].Code)
}

func TestDrawingFaces(t *testing.T) {
	d, _, err := Open(beamPath).Drawing()
	require.NoError(t, err)

	require.Len(t, d.Faces, 2)
	assert.Equal(t, "front", d.Faces[0].Name)
	assert.Equal(t, "top", d.Faces[1].Name)
	assert.InDelta(t, 6236.88, d.Width, 1e-9)
	assert.InDelta(t, 525.78+165.10, d.Height, 1e-9)

	d, _, err = Open(beamPath).Faces(model.FaceTop).Drawing()
	require.NoError(t, err)
	require.Len(t, d.Faces, 1)
	assert.Equal(t, "top", d.Faces[0].Name)
	assert.Equal(t, 1, d.ItemCount())
}

func TestSVG(t *testing.T) {
	out, _, err := Open(beamPath).SVG()
	require.NoError(t, err)

	doc := string(out)
	assert.True(t, strings.HasPrefix(doc, "<svg"))
	assert.Contains(t, doc, `<g id="front" transform="translate(0,0)">`)
	assert.Contains(t, doc, `<g id="top"`)
	assert.Contains(t, doc, ">B_1</text>")
	assert.Contains(t, doc, `stroke="red"`)
}

func TestSVGWithoutBevels(t *testing.T) {
	out, _, err := Open(beamPath).WithoutBevels().SVG()
	require.NoError(t, err)
	assert.NotContains(t, string(out), `stroke="red"`)
}

func TestSVGStyle(t *testing.T) {
	style := svg.DefaultStyle()
	style.OuterFill = "#336699"

	out, _, err := Open(beamPath).Style(style).SVG()
	require.NoError(t, err)
	assert.Contains(t, string(out), `fill="#336699"`)
}

func TestPNG(t *testing.T) {
	out, _, err := Open(beamPath).PNG(400)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Greater(t, img.Bounds().Dy(), 0)
}

func TestSummary(t *testing.T) {
	s, _, err := Open(beamPath).Summary()
	require.NoError(t, err)

	assert.Equal(t, "UTF-8", s.Encoding)
	assert.Equal(t, "B_1", s.Header.PieceID)
	assert.Equal(t, "I", s.Header.CodeProfile)
	assert.Equal(t, []string{"TEXT1"}, s.Header.Text)
	assert.Equal(t, 3, s.Records["Hole"])
	assert.Equal(t, []string{"front", "top"}, s.Faces)
	assert.Equal(t, "NC1", s.Format)

	d, _, err := Open(beamPath).Drawing()
	require.NoError(t, err)
	assert.Equal(t, d.ItemCount(), s.Items)
}

func TestMissingStartMarkerWarns(t *testing.T) {
	data := strings.TrimPrefix(mustRead(t, beamPath), "ST\n")
	require.NotEqual(t, mustRead(t, beamPath), data)

	s, warnings, err := FromBytes([]byte(data)).Summary()
	require.NoError(t, err)
	assert.Equal(t, "Unknown", s.Format)
	assert.Equal(t, "B_1", s.Header.PieceID)

	require.NotEmpty(t, warnings)
	assert.Equal(t, "ST", warnings[0].Code)
	assert.Equal(t, 1, warnings[0].Line)
}

func TestSummaryFormatFromLocation(t *testing.T) {
	data, err := os.ReadFile(beamPath)
	require.NoError(t, err)

	s, _, err := Open("s3://parts/beam.nc").Source(mapFetcher{"s3://parts/beam.nc": data}).Summary()
	require.NoError(t, err)
	assert.Equal(t, "NC", s.Format)
}

func TestFromBytesAndReader(t *testing.T) {
	data, err := os.ReadFile(beamPath)
	require.NoError(t, err)

	a, _, err := FromBytes(data).SVG()
	require.NoError(t, err)
	b, _, err := FromReader(bytes.NewReader(data)).SVG()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestFromReaderError(t *testing.T) {
	_, _, err := FromReader(failingReader{}).Piece()
	assert.ErrorIs(t, err, ErrIO)
}

func TestSource(t *testing.T) {
	data, err := os.ReadFile(beamPath)
	require.NoError(t, err)

	fetcher := mapFetcher{"s3://parts/beam.nc1": data}
	piece, _, err := Open("s3://parts/beam.nc1").Source(fetcher).Piece()
	require.NoError(t, err)
	assert.Equal(t, "B_1", piece.Header.PieceID)

	_, _, err = Open("s3://parts/other.nc1").Source(fetcher).Piece()
	assert.ErrorIs(t, err, ErrIO)
}

func TestParseErrorKind(t *testing.T) {
	bad := strings.Replace(mustRead(t, beamPath), "  v     50.00s     40.00      22.00       0.00", "  v     50.00s     40.00", 1)
	_, _, err := FromBytes([]byte(bad)).SVG()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "missing_field", ErrorKind(err))
}

func TestChainImmutability(t *testing.T) {
	base := Open(beamPath)
	front := base.Faces(model.FaceFront)
	noBevel := front.WithoutBevels()

	assert.Nil(t, base.options.faces)
	assert.True(t, base.options.bevels)
	assert.Equal(t, []model.Face{model.FaceFront}, front.options.faces)
	assert.True(t, front.options.bevels)
	assert.False(t, noBevel.options.bevels)

	// reset to all faces
	assert.Nil(t, front.Faces().options.faces)
}

func TestParseFaces(t *testing.T) {
	faces, err := ParseFaces("v, o")
	require.NoError(t, err)
	assert.Equal(t, []model.Face{model.FaceFront, model.FaceTop}, faces)

	faces, err = ParseFaces("")
	require.NoError(t, err)
	assert.Nil(t, faces)

	_, err = ParseFaces("v,x")
	assert.ErrorIs(t, err, ErrInvalidFaceCode)
}

func TestFormatWarnings(t *testing.T) {
	assert.Equal(t, "", FormatWarnings(nil))

	got := FormatWarnings([]Warning{
		{Line: 3, Code: "PU", Message: "dropped"},
		{Message: "plain"},
	})
	assert.Equal(t, "line 3: [PU] dropped\nplain", got)
}

func TestMust(t *testing.T) {
	assert.Equal(t, "hello", Must("hello", nil))
	assert.Panics(t, func() { Must("", os.ErrNotExist) })

	out := MustValue(Open(beamPath).SVG())
	assert.NotEmpty(t, out)
	assert.Panics(t, func() { MustValue(Open("nonexistent.nc1").SVG()) })
}

func mustRead(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
