package core

import (
	"math"
	"strconv"
	"strings"
)

// unitSuffixes are the marker letters DSTV writers append to numeric values
// (e.g. "200.00s" for a sawing hint). They carry no numeric meaning.
const unitSuffixes = "swluo"

// ParseFloat strips the unit-suffix letters from token and parses the rest as
// a float64. Only finite values are accepted. field names the value in the
// returned error.
func ParseFloat(token, field string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(unitSuffixes, r) {
			return -1
		}
		return r
	}, token)

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Kind: ErrInvalidNumericField, Field: field, Value: token}
	}
	return v, nil
}

// Fields is a cursor over the whitespace-delimited tokens of one line.
type Fields struct {
	tokens []string
	pos    int

	// Record and Line are copied into every error and warning.
	Record string
	Line   int
	Code   string

	// Warnings receives diagnostics for lenient fields. May be nil.
	Warnings *Warnings
}

// NewFields tokenizes text for the given record kind and source line.
func NewFields(text, record string, line int) *Fields {
	return &Fields{
		tokens: strings.Fields(text),
		Record: record,
		Line:   line,
	}
}

// Len returns the total number of tokens on the line.
func (f *Fields) Len() int {
	return len(f.tokens)
}

// Remaining returns the number of tokens not yet consumed.
func (f *Fields) Remaining() int {
	return len(f.tokens) - f.pos
}

// Peek returns the next token without consuming it.
func (f *Fields) Peek() (string, bool) {
	if f.pos >= len(f.tokens) {
		return "", false
	}
	return f.tokens[f.pos], true
}

// Next consumes and returns the next token.
func (f *Fields) Next() (string, bool) {
	tok, ok := f.Peek()
	if ok {
		f.pos++
	}
	return tok, ok
}

// Token consumes the next token, failing with ErrMissingField if the line
// has run out.
func (f *Fields) Token(field string) (string, error) {
	tok, ok := f.Next()
	if !ok {
		return "", f.missing(field)
	}
	return tok, nil
}

// Float reads a required numeric field.
func (f *Fields) Float(field string) (float64, error) {
	tok, err := f.Token(field)
	if err != nil {
		return 0, err
	}
	return f.parse(tok, field)
}

// OptionalFloat reads a numeric field that may be absent, returning def in
// that case.
func (f *Fields) OptionalFloat(field string, def float64) (float64, error) {
	tok, ok := f.Next()
	if !ok {
		return def, nil
	}
	return f.parse(tok, field)
}

// LenientFloat reads a numeric field that should be present but defaults to
// zero with a warning when it is not.
func (f *Fields) LenientFloat(field string) (float64, error) {
	tok, ok := f.Next()
	if !ok {
		f.Warnings.Add(f.Line, f.Code, "%s: `%s` not found, using 0", f.Record, field)
		return 0, nil
	}
	return f.parse(tok, field)
}

// Rest consumes all remaining tokens and joins them with a single space.
func (f *Fields) Rest(field string) (string, error) {
	if f.pos >= len(f.tokens) {
		return "", f.missing(field)
	}
	rest := strings.Join(f.tokens[f.pos:], " ")
	f.pos = len(f.tokens)
	return rest, nil
}

func (f *Fields) parse(tok, field string) (float64, error) {
	v, err := ParseFloat(tok, field)
	if err != nil {
		fe := err.(*FieldError)
		fe.Record = f.Record
		fe.Line = f.Line
		return 0, fe
	}
	return v, nil
}

func (f *Fields) missing(field string) error {
	return &FieldError{Kind: ErrMissingField, Record: f.Record, Field: field, Line: f.Line}
}
