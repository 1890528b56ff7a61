// Package core provides low-level DSTV parsing primitives.
//
// This package implements the building blocks that every record parser relies
// on: splitting a decoded NC file into its header and typed blocks, reading
// whitespace-delimited fields, and the error and warning types shared by the
// rest of the module.
//
// # Segmentation
//
// [Segment] removes comment lines, extracts the 24-line header block and
// groups the remaining lines into [Block] values keyed by their two-letter
// type code:
//
//	var warnings core.Warnings
//	seg, err := core.Segment(text, &warnings)
//	for _, b := range seg.Blocks {
//	    fmt.Println(b.Code, len(b.Lines))
//	}
//
// Hole blocks get special treatment: a hole block that already holds one
// line is closed and the next indented line opens a new hole block, so a run
// of hole lines below a single BO code yields one block per hole.
//
// # Fields
//
// Numeric values may carry unit-suffix letters (s, w, l, u, o) that are
// stripped before parsing:
//
//	v, err := core.ParseFloat("200.00s", "x")   // 200
//
// The [Fields] cursor walks the tokens of one line and applies the
// required/optional policy of each field.
//
// # Errors
//
// Failures are reported as [*FieldError] values that unwrap to one of the
// sentinel kinds ([ErrInvalidHeader], [ErrMissingField], ...), so callers
// can classify them with errors.Is.
package core
