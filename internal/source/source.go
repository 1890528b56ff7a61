package source

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/tsawler/dstv/core"
)

// Fetcher returns the raw bytes stored at a location.
type Fetcher interface {
	Fetch(ctx context.Context, location string) ([]byte, error)
}

// Local reads files from disk.
type Local struct{}

// Fetch reads the file at path.
func (Local) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrIO, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read file: %w", core.ErrIO, err)
	}
	return data, nil
}

// IsS3 reports whether location is an s3:// URL.
func IsS3(location string) bool {
	return strings.HasPrefix(location, "s3://")
}

// Router sends s3:// locations to object storage and everything else to the
// local filesystem. The S3 client is created on first use.
type Router struct {
	local Fetcher
	cfg   S3Config

	mu sync.Mutex
	s3 Fetcher
}

// NewRouter creates a router. cfg is only used once an s3:// location is
// fetched.
func NewRouter(cfg S3Config) *Router {
	return &Router{local: Local{}, cfg: cfg}
}

// NewRouterWith creates a router over explicit backends. A nil local fetcher
// reads from disk; a nil s3 fetcher is built from the zero S3Config on demand.
func NewRouterWith(local, s3 Fetcher) *Router {
	if local == nil {
		local = Local{}
	}
	return &Router{local: local, s3: s3}
}

// Fetch reads location from the matching backend.
func (r *Router) Fetch(ctx context.Context, location string) ([]byte, error) {
	if !IsS3(location) {
		return r.local.Fetch(ctx, location)
	}

	f, err := r.objectStore(ctx)
	if err != nil {
		return nil, err
	}
	return f.Fetch(ctx, location)
}

func (r *Router) objectStore(ctx context.Context) (Fetcher, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3 != nil {
		return r.s3, nil
	}
	s, err := NewS3(ctx, r.cfg)
	if err != nil {
		return nil, err
	}
	r.s3 = s
	return s, nil
}
