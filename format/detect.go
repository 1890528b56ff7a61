// Package format provides file format and text encoding detection for DSTV
// documents.
package format

import (
	"bufio"
	"path/filepath"
	"strings"
)

// Format represents a supported document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// NC1 indicates a DSTV NC1 document (.nc1).
	NC1
	// NC indicates a DSTV document with the short .nc extension.
	NC
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case NC1:
		return "NC1"
	case NC:
		return "NC"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case NC1:
		return ".nc1"
	case NC:
		return ".nc"
	default:
		return ""
	}
}

// IsDSTV reports whether f is one of the DSTV formats.
func (f Format) IsDSTV() bool {
	return f == NC1 || f == NC
}

// Detect determines file format from filename extension. A trailing .gz is
// ignored, so "part.nc1.gz" is NC1.
func Detect(filename string) Format {
	name := strings.ToLower(filename)
	name = strings.TrimSuffix(name, ".gz")
	ext := filepath.Ext(name)
	switch ext {
	case ".nc1":
		return NC1
	case ".nc":
		return NC
	default:
		return Unknown
	}
}

// DetectFromMagic checks the content to determine format. A DSTV document
// starts with the ST marker on its first line that is neither blank nor a
// comment. Returns Unknown if the format cannot be determined.
func DetectFromMagic(data []byte) Format {
	text, _, err := Decode(data)
	if err != nil {
		return Unknown
	}

	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}
		if strings.HasPrefix(line, "ST") {
			return NC1
		}
		return Unknown
	}
	return Unknown
}
