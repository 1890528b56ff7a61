package model

import (
	"strings"

	"github.com/tsawler/dstv/core"
)

// Face identifies the physical side of a piece a record belongs to.
type Face int

const (
	// FaceFront is the `v` face (web front). It is the zero value.
	FaceFront Face = iota
	// FaceTop is the `o` face (upper flange).
	FaceTop
	// FaceBottom is the `u` face (lower flange).
	FaceBottom
	// FaceBehind is the `h` face (web back).
	FaceBehind
)

// FaceOrder is the order faces are stacked in a drawing.
var FaceOrder = []Face{FaceBottom, FaceFront, FaceTop, FaceBehind}

// ParseFace maps a face code token to a Face.
func ParseFace(s string) (Face, error) {
	switch strings.TrimSpace(s) {
	case "v":
		return FaceFront, nil
	case "o":
		return FaceTop, nil
	case "u":
		return FaceBottom, nil
	case "h":
		return FaceBehind, nil
	default:
		return FaceFront, &core.FieldError{Kind: core.ErrInvalidFaceCode, Field: "face", Value: s}
	}
}

// IsFace reports whether s is a valid face code.
func IsFace(s string) bool {
	_, err := ParseFace(s)
	return err == nil
}

// Code returns the single-letter face code.
func (f Face) Code() string {
	switch f {
	case FaceTop:
		return "o"
	case FaceBottom:
		return "u"
	case FaceBehind:
		return "h"
	default:
		return "v"
	}
}

// GroupName returns the drawing group name of the face.
func (f Face) GroupName() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceBottom:
		return "bottom"
	case FaceBehind:
		return "back"
	default:
		return "front"
	}
}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "Top"
	case FaceBottom:
		return "Bottom"
	case FaceBehind:
		return "Behind"
	default:
		return "Front"
	}
}
