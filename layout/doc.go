// Package layout stacks the faces of a piece into one drawing canvas.
//
// # Composition
//
// The [Composer] sorts the records of a piece by draw priority, partitions
// them by face and stacks the faces from top to bottom:
//
//	drawing := layout.Compose(piece)
//	for _, g := range drawing.Faces {
//	    fmt.Println(g.Name, g.Transform())
//	}
//
// Faces are stacked in the order bottom, front, top, back. Each face is
// shifted down by the running offset, which grows by the flange width for
// the bottom and top faces and by the profile height for the front and back
// faces. The top face is also mirrored vertically.
//
// The canvas is as wide as the piece and as high as the final offset.
//
// # Configuration
//
//	config := layout.DefaultComposerConfig()
//	config.Faces = []model.Face{model.FaceFront}
//	config.Bevels = false
//	drawing := layout.NewComposerWithConfig(config).Compose(piece)
package layout
