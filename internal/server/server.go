// Package server exposes the converter over HTTP.
//
// Routes:
//
//	POST /v1/convert   NC document in, SVG or PNG out
//	POST /v1/inspect   NC document in, JSON summary out
//	GET  /healthz      liveness
//	GET  /metrics      Prometheus metrics
//
// Every response carries an X-Request-ID header. Documents that fail to
// parse are answered with 422 and a JSON body {"error": ..., "kind": ...}.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tsawler/dstv/internal/logging"
	"github.com/tsawler/dstv/internal/metrics"
	"github.com/tsawler/dstv/svg"
)

// RequestIDHeader is the header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// Options configures the service.
type Options struct {
	// MaxBodyBytes limits the size of submitted documents
	MaxBodyBytes int64

	ReadTimeout time.Duration

	Style svg.Style
}

// DefaultOptions returns options with a 10 MiB body limit and the default
// style.
func DefaultOptions() Options {
	return Options{
		MaxBodyBytes: 10 << 20,
		ReadTimeout:  30 * time.Second,
		Style:        svg.DefaultStyle(),
	}
}

// Server handles conversion requests.
type Server struct {
	opts     Options
	log      *logging.Logger
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	handler  http.Handler
}

// New creates a server. Metrics are registered on reg and served from it.
// A zero MaxBodyBytes uses the default limit.
func New(opts Options, log *logging.Logger, reg *prometheus.Registry) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultOptions().MaxBodyBytes
	}
	s := &Server{
		opts:     opts,
		log:      log,
		metrics:  metrics.New(reg),
		gatherer: reg,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/convert", s.handleConvert)
	mux.HandleFunc("POST /v1/inspect", s.handleInspect)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	s.handler = s.withRequestID(mux)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       s.opts.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

type ctxKey struct{}

// withRequestID assigns every request an id, reusing a valid incoming one.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), ctxKey{}, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger returns the logger tagged with the request id.
func (s *Server) requestLogger(r *http.Request) *logging.Logger {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return s.log.WithField("request_id", id)
}
