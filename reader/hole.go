package reader

import (
	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/model"
)

// parseHole reads "face x y diameter depth".
func parseHole(f *core.Fields) (*model.Hole, error) {
	face, err := strictFace(f)
	if err != nil {
		return nil, err
	}

	h := &model.Hole{FaceCode: face}
	for _, v := range []struct {
		dst   *float64
		field string
	}{
		{&h.X, "x"},
		{&h.Y, "y"},
		{&h.Diameter, "diameter"},
		{&h.Depth, "depth"},
	} {
		if *v.dst, err = f.Float(v.field); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// parseSlot reads "face x y diameter depth length width angle".
func parseSlot(f *core.Fields) (*model.Slot, error) {
	face, err := strictFace(f)
	if err != nil {
		return nil, err
	}

	s := &model.Slot{FaceCode: face}
	for _, v := range []struct {
		dst   *float64
		field string
	}{
		{&s.X, "x"},
		{&s.Y, "y"},
		{&s.Diameter, "diameter"},
		{&s.Depth, "depth"},
		{&s.Length, "slot_length"},
		{&s.Width, "slot_width"},
		{&s.Angle, "angle"},
	} {
		if *v.dst, err = f.Float(v.field); err != nil {
			return nil, err
		}
	}
	return s, nil
}
