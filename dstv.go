// Package dstv provides a fluent API for turning DSTV steel-piece NC files
// into multi-face drawings.
//
// Basic usage:
//
//	out, warnings, err := dstv.Open("part.nc1").SVG()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dstv.FormatWarnings(warnings))
//	}
//
// With options:
//
//	png, _, err := dstv.Open("s3://parts/2024/part.nc1").
//	    Faces(model.FaceFront, model.FaceTop).
//	    WithoutBevels().
//	    PNG(800)
//
// For lower-level access, the reader, layout and svg packages are also
// available.
package dstv

import (
	"bytes"
	"fmt"
	"io"

	"github.com/tsawler/dstv/core"
)

// Open returns a Converter for the document at location. The location is a
// local path or an s3://bucket/key URL; nothing is read until a terminal
// operation runs.
//
// Example:
//
//	piece, warnings, err := dstv.Open("part.nc1").Piece()
func Open(location string) *Converter {
	return &Converter{
		location: location,
		options:  defaultOptions(),
	}
}

// FromBytes returns a Converter for an in-memory document.
//
// Example:
//
//	out, _, err := dstv.FromBytes(data).SVG()
func FromBytes(data []byte) *Converter {
	return &Converter{
		data:    bytes.Clone(data),
		hasData: true,
		options: defaultOptions(),
	}
}

// FromReader reads all of r and returns a Converter for its contents. A read
// failure is reported by the first terminal operation.
//
// Example:
//
//	out, _, err := dstv.FromReader(req.Body).SVG()
func FromReader(r io.Reader) *Converter {
	data, err := io.ReadAll(r)
	if err != nil {
		return &Converter{
			options: defaultOptions(),
			err:     fmt.Errorf("%w: failed to read input: %w", core.ErrIO, err),
		}
	}
	return &Converter{
		data:    data,
		hasData: true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	faces := dstv.Must(dstv.ParseFaces("v,o"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustValue wraps a terminal operation such as SVG() or Piece() and panics
// if the error is non-nil. It discards warnings and returns just the value.
//
// Example:
//
//	out := dstv.MustValue(dstv.Open("part.nc1").SVG())
func MustValue[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
