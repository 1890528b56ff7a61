package filters

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// DefaultLimit is the default cap on decompressed output.
const DefaultLimit = 64 << 20

// ErrTooLarge is returned when the decompressed output exceeds the limit.
var ErrTooLarge = errors.New("decompressed document too large")

// Wrapper identifies the compression container of an input.
type Wrapper int

const (
	None Wrapper = iota
	Gzip
	Zlib
)

func (w Wrapper) String() string {
	switch w {
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "none"
	}
}

// Sniff returns the compression container of data from its first bytes.
func Sniff(data []byte) Wrapper {
	if len(data) < 2 {
		return None
	}
	if data[0] == 0x1f && data[1] == 0x8b {
		return Gzip
	}
	// zlib: CM 8 (deflate), window <= 32K, header checksum
	cmf, flg := data[0], data[1]
	if cmf&0x0f == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0 {
		return Zlib
	}
	return None
}

// Decompress returns the plain contents of data. Uncompressed input is
// returned as is. limit caps the output size; 0 means DefaultLimit.
func Decompress(data []byte, limit int64) ([]byte, Wrapper, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	w := Sniff(data)
	var (
		rc  io.ReadCloser
		err error
	)
	switch w {
	case Gzip:
		rc, err = gzip.NewReader(bytes.NewReader(data))
	case Zlib:
		rc, err = zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return data, None, nil
		}
	default:
		return data, None, nil
	}
	if err != nil {
		return nil, w, fmt.Errorf("failed to create %s reader: %w", w, err)
	}
	defer rc.Close()

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(rc, limit+1))
	if err != nil {
		if w == Zlib {
			// two-byte zlib magic also matches some plain text
			return data, None, nil
		}
		return nil, w, fmt.Errorf("failed to decompress %s: %w", w, err)
	}
	if n > limit {
		return nil, w, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}

	return buf.Bytes(), w, nil
}
