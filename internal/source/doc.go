// Package source fetches raw NC documents from the local filesystem or from
// S3-compatible object storage.
//
// A [Router] picks the backend from the location: "s3://bucket/key" goes to
// object storage, everything else is read from disk. Every failure wraps
// core.ErrIO.
package source
