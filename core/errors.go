package core

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error produced while reading a DSTV document wraps
// exactly one of these.
var (
	ErrIO                  = errors.New("io failure")
	ErrInvalidHeader       = errors.New("invalid header")
	ErrInvalidProfileTag   = errors.New("invalid profile code")
	ErrInvalidFaceCode     = errors.New("invalid face code")
	ErrMissingField        = errors.New("missing field")
	ErrInvalidNumericField = errors.New("invalid numeric field")
	ErrUnknownRecordType   = errors.New("unknown record type")
)

// FieldError describes a failure while decoding a single value.
type FieldError struct {
	Kind   error  // one of the Err* kinds
	Record string // record kind, e.g. "Hole" (empty for header fields)
	Field  string // field name, e.g. "diameter"
	Value  string // raw token, if any
	Line   int    // 1-based source line, 0 if unknown
}

func (e *FieldError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Kind.Error())
	if e.Record != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.Record)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, ": `%s`", e.Field)
	}
	if e.Value != "" {
		fmt.Fprintf(&sb, " got `%s`", e.Value)
	}
	if e.Line > 0 {
		fmt.Fprintf(&sb, " (line %d)", e.Line)
	}
	return sb.String()
}

// Unwrap returns the error kind.
func (e *FieldError) Unwrap() error {
	return e.Kind
}

// Kind returns a short label for the error kind wrapped by err, suitable for
// metric labels. It returns "unknown" for errors that wrap no kind.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIO):
		return "io"
	case errors.Is(err, ErrInvalidHeader):
		return "invalid_header"
	case errors.Is(err, ErrInvalidProfileTag):
		return "invalid_profile"
	case errors.Is(err, ErrInvalidFaceCode):
		return "invalid_face"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrInvalidNumericField):
		return "invalid_number"
	case errors.Is(err, ErrUnknownRecordType):
		return "unknown_record"
	default:
		return "unknown"
	}
}
