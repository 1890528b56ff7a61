// Package model provides the in-memory representation of a DSTV piece.
//
// All parsing operations produce these types, making them the primary API
// for consuming a piece.
//
// # Piece Structure
//
// The [Piece] type holds the positional [Header] and the ordered list of
// [Record] values:
//
//	piece := model.NewPiece()
//	piece.AddRecord(&model.Hole{FaceCode: model.FaceFront, X: 50, Y: 40, Diameter: 22})
//
// # Records
//
// [Record] is a closed set of types, one per record kind:
//
//   - [OuterBorder], [InnerBorder] - contours made of [ContourPoint] values
//   - [Cut] - straight cut, always on the top face
//   - [Bend] - circular bend, always on the top face
//   - [Hole], [Slot] - round and elongated holes
//   - [Numeration] - text labels
//
// Each record reports its [Face] and a draw-priority index (ZIndex) used to
// draw borders before the features that cut into them.
//
// # Geometry
//
//   - [Point], [Point3] - 2D and 3D coordinates
//   - [Matrix] - 2D affine transformation matrix
package model
