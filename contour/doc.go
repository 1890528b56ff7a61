// Package contour turns border contour points into drawing paths.
//
// [Synthesize] walks the points of a border and emits one path command per
// edge. The corner kind and radius stored on a point govern the edge that
// leaves it:
//
//   - straight corners become line segments
//   - rounded corners become quadratic curves when the edge runs up-right,
//     up-left or down-left, and circular arcs otherwise
//   - arc corners always become circular arcs
//
// Points with a positive bevel also produce an overlay [Segment] for the
// edge leaving them.
//
// [Flatten] approximates a [Path] with polylines for rasterization.
package contour
