// Package preview rasterizes composed drawings into PNG images.
//
// Shapes are filled and stroked with golang.org/x/image/vector using the
// colors of an [svg.Style]. Curves and arcs are flattened first. Labels are
// not rasterized.
//
//	img, err := preview.Render(drawing, preview.Options{Width: 800})
//	err = png.Encode(w, img)
package preview
