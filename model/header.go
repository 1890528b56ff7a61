package model

import (
	"strings"

	"github.com/tsawler/dstv/core"
)

// CodeProfile is the profile family of a piece.
type CodeProfile int

const (
	ProfileI CodeProfile = iota
	ProfileL
	ProfileU
	ProfileB  // sheets, plates
	ProfileRU // round bar
	ProfileRO // rounded tube
	ProfileM  // rectangular tube
	ProfileC
	ProfileT
	ProfileSO // special profile
)

var profileCodes = map[string]CodeProfile{
	"I":  ProfileI,
	"L":  ProfileL,
	"U":  ProfileU,
	"B":  ProfileB,
	"RU": ProfileRU,
	"RO": ProfileRO,
	"M":  ProfileM,
	"C":  ProfileC,
	"T":  ProfileT,
	"SO": ProfileSO,
}

// ParseCodeProfile maps a profile code such as "I" or "RO" to a CodeProfile.
func ParseCodeProfile(s string) (CodeProfile, error) {
	s = strings.TrimSpace(s)
	p, ok := profileCodes[s]
	if !ok {
		return 0, &core.FieldError{Kind: core.ErrInvalidProfileTag, Field: "code_profile", Value: s}
	}
	return p, nil
}

// Code returns the short profile code.
func (p CodeProfile) Code() string {
	switch p {
	case ProfileI:
		return "I"
	case ProfileL:
		return "L"
	case ProfileU:
		return "U"
	case ProfileB:
		return "B"
	case ProfileRU:
		return "RU"
	case ProfileRO:
		return "RO"
	case ProfileM:
		return "M"
	case ProfileC:
		return "C"
	case ProfileT:
		return "T"
	default:
		return "SO"
	}
}

// String returns a human readable description of the profile family.
func (p CodeProfile) String() string {
	switch p {
	case ProfileI:
		return "Profile I"
	case ProfileL:
		return "Profile L"
	case ProfileU:
		return "Profile U"
	case ProfileB:
		return "Sheets, Plate, teared sheets, etc."
	case ProfileRU:
		return "Round"
	case ProfileRO:
		return "Rounded Tube"
	case ProfileM:
		return "Rectangular Tube"
	case ProfileC:
		return "Profile C"
	case ProfileT:
		return "Profile T"
	default:
		return "Special Profile"
	}
}

// Header holds the 24 positional header fields of a DSTV file.
type Header struct {
	OrderID     string
	DrawingID   string
	PhaseID     string
	PieceID     string
	SteelGrade  string
	Quantity    int
	Profile     string
	CodeProfile CodeProfile

	Length    float64
	SawLength *float64 // nil when the file gives only one length

	ProfileHeight   float64
	FlangeWidth     float64
	FlangeThickness float64
	WebThickness    float64
	Radius          float64

	WeightPerMeter  float64
	PaintingSurface float64 // per meter

	WebStartCut    float64
	WebEndCut      float64
	FlangeStartCut float64
	FlangeEndCut   float64

	Text [4]string
}
