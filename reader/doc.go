// Package reader turns DSTV documents into [model.Piece] values.
//
// This package orchestrates the lower-level core package: it decodes the
// input bytes, segments the text into the header and typed blocks and
// dispatches every block to its record parser.
//
// # Opening DSTV Files
//
// Use [Open] to read a file:
//
//	r, err := reader.Open("P1.nc1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	piece, warnings, err := r.Parse()
//
// Or use [NewReader] with any io.Reader, or [Parse] with text that is
// already decoded.
//
// # Record Dispatch
//
// Blocks are mapped to records by their two-letter code:
//
//   - AK, IK - outer and inner borders, one contour point per line
//   - BO - holes; a first line with more than 7 values is a slot
//   - SC, KA, SI - cuts, bends and numerations, first line only
//
// Blocks with any other code are dropped and reported as warnings. A
// malformed block with a known code fails the whole parse.
//
// # Field Policy
//
// Border points may omit the face code (Front is assumed), the radius (0,
// with a warning) and the bevel (0). Every other field is required, and face
// codes of holes, slots and numerations must be valid.
package reader
