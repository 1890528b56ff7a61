package reader

import (
	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/model"
)

// parseCut reads "x y z nx ny nz": the start point followed by the normal
// vector.
func parseCut(f *core.Fields) (*model.Cut, error) {
	c := &model.Cut{}
	for _, v := range []struct {
		dst   *float64
		field string
	}{
		{&c.Start.X, "start_x"},
		{&c.Start.Y, "start_y"},
		{&c.Start.Z, "start_z"},
		{&c.Normal.X, "normal_x"},
		{&c.Normal.Y, "normal_y"},
		{&c.Normal.Z, "normal_z"},
	} {
		var err error
		if *v.dst, err = f.Float(v.field); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// parseBend reads "ox oy angle radius fx fy".
func parseBend(f *core.Fields) (*model.Bend, error) {
	b := &model.Bend{}
	for _, v := range []struct {
		dst   *float64
		field string
	}{
		{&b.Origin.X, "origin_x"},
		{&b.Origin.Y, "origin_y"},
		{&b.Angle, "angle"},
		{&b.Radius, "radius"},
		{&b.Finish.X, "finish_x"},
		{&b.Finish.Y, "finish_y"},
	} {
		var err error
		if *v.dst, err = f.Float(v.field); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// parseNumeration reads "face x y angle height text...". The label is the
// rest of the line.
func parseNumeration(f *core.Fields) (*model.Numeration, error) {
	face, err := strictFace(f)
	if err != nil {
		return nil, err
	}

	n := &model.Numeration{FaceCode: face}
	for _, v := range []struct {
		dst   *float64
		field string
	}{
		{&n.X, "x"},
		{&n.Y, "y"},
		{&n.Angle, "angle"},
		{&n.Height, "letter_height"},
	} {
		if *v.dst, err = f.Float(v.field); err != nil {
			return nil, err
		}
	}

	if n.Text, err = f.Rest("text"); err != nil {
		return nil, err
	}
	return n, nil
}
