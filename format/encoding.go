package format

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is the character encoding a document was decoded from.
type Encoding int

const (
	UTF8 Encoding = iota
	UTF8BOM
	UTF16LE
	UTF16BE
	// Windows1252 is used for any input that is not valid UTF-8. Older
	// DSTV writers emit it for umlauts in steel grades and free text.
	Windows1252
)

func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "UTF-8 (BOM)"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case Windows1252:
		return "Windows-1252"
	default:
		return "UTF-8"
	}
}

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// Decode converts raw document bytes to UTF-8 text. Byte order marks are
// honoured and removed. Input without a BOM that is not valid UTF-8 is
// decoded as Windows-1252.
func Decode(data []byte) (string, Encoding, error) {
	var (
		enc Encoding
		dec *encoding.Decoder
	)
	switch {
	case bytes.HasPrefix(data, bomUTF8):
		return string(data[len(bomUTF8):]), UTF8BOM, nil
	case bytes.HasPrefix(data, bomUTF16LE):
		enc, dec = UTF16LE, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case bytes.HasPrefix(data, bomUTF16BE):
		enc, dec = UTF16BE, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	case utf8.Valid(data):
		return string(data), UTF8, nil
	default:
		enc, dec = Windows1252, charmap.Windows1252.NewDecoder()
	}

	out, _, err := transform.Bytes(dec, data)
	if err != nil {
		return "", enc, fmt.Errorf("failed to decode %s: %w", enc, err)
	}
	return string(out), enc, nil
}
