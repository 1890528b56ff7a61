package dstv

import (
	"strings"

	"github.com/tsawler/dstv/core"
)

// Warning is a non-fatal issue found while reading a document.
type Warning = core.Warning

// Error kinds, re-exported for errors.Is checks.
var (
	ErrIO                  = core.ErrIO
	ErrInvalidHeader       = core.ErrInvalidHeader
	ErrInvalidProfileTag   = core.ErrInvalidProfileTag
	ErrInvalidFaceCode     = core.ErrInvalidFaceCode
	ErrMissingField        = core.ErrMissingField
	ErrInvalidNumericField = core.ErrInvalidNumericField
	ErrUnknownRecordType   = core.ErrUnknownRecordType
)

// FormatWarnings joins warnings into a single string, one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

// ErrorKind returns a short label for the kind of err, such as "io" or
// "missing_field". It returns "" for nil.
func ErrorKind(err error) string {
	return core.Kind(err)
}
