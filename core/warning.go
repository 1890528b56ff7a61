package core

import (
	"fmt"
	"strings"
)

// Warning is a non-fatal issue found while reading a document. The parse
// still succeeds but the result may be incomplete.
type Warning struct {
	Line    int    // 1-based source line, 0 if not tied to a line
	Code    string // block type code, empty for header warnings
	Message string
}

func (w Warning) String() string {
	var sb strings.Builder
	if w.Line > 0 {
		fmt.Fprintf(&sb, "line %d: ", w.Line)
	}
	if w.Code != "" {
		fmt.Fprintf(&sb, "[%s] ", w.Code)
	}
	sb.WriteString(w.Message)
	return sb.String()
}

// Warnings collects warnings for a single parse call.
type Warnings struct {
	list []Warning
}

// Add records a warning.
func (w *Warnings) Add(line int, code, format string, args ...any) {
	if w == nil {
		return
	}
	w.list = append(w.list, Warning{
		Line:    line,
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// List returns the collected warnings in the order they were added.
func (w *Warnings) List() []Warning {
	if w == nil || len(w.list) == 0 {
		return nil
	}
	return append([]Warning(nil), w.list...)
}

// Len returns the number of collected warnings.
func (w *Warnings) Len() int {
	if w == nil {
		return 0
	}
	return len(w.list)
}
