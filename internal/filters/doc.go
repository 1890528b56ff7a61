// Package filters undoes transport compression of NC documents.
//
// NC files are often archived or uploaded gzip or zlib compressed. The
// [Decompress] filter recognizes both containers by their magic bytes and
// passes any other input through unchanged:
//
//	plain, wrapper, err := filters.Decompress(data, filters.DefaultLimit)
//
// The output size is capped so that a small compressed upload cannot expand
// without bound.
package filters
