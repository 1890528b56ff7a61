package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/tsawler/dstv"
	"github.com/tsawler/dstv/core"
	"github.com/tsawler/dstv/internal/metrics"
)

// errorResponse is the JSON body of failed requests.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// inspectResponse is the JSON body of /v1/inspect.
type inspectResponse struct {
	*dstv.Summary
	Warnings []string `json:"warnings"`
}

// errBadRequest marks failures caused by query parameters.
var errBadRequest = errors.New("bad request")

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	timer := metrics.NewTimer()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "svg"
	}
	if format != "svg" && format != "png" {
		s.writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: unsupported format %q", errBadRequest, format))
		return
	}

	conv, ok := s.converter(w, r)
	if !ok {
		return
	}

	var (
		out         []byte
		warnings    []dstv.Warning
		err         error
		contentType string
	)
	switch format {
	case "png":
		width := 0
		if v := r.URL.Query().Get("width"); v != "" {
			width, err = strconv.Atoi(v)
			if err != nil || width <= 0 || width > 8192 {
				s.writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: invalid width %q", errBadRequest, v))
				return
			}
		}
		out, warnings, err = conv.PNG(width)
		contentType = "image/png"
	default:
		out, warnings, err = conv.SVG()
		contentType = "image/svg+xml"
	}

	s.metrics.RecordConversion(format, err, timer.Duration())
	s.metrics.RecordWarnings(warnings)
	log.LogWarnings(warnings)
	if err != nil {
		log.LogFailure("conversion failed", err)
		s.writeError(w, http.StatusUnprocessableEntity, core.Kind(err), err)
		return
	}

	log.Info("converted", zap.String("format", format), zap.Int("bytes", len(out)), zap.Int("warnings", len(warnings)))
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-DSTV-Warnings", strconv.Itoa(len(warnings)))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	log := s.requestLogger(r)
	timer := metrics.NewTimer()

	conv, ok := s.converter(w, r)
	if !ok {
		return
	}

	summary, warnings, err := conv.Summary()
	s.metrics.RecordConversion("inspect", err, timer.Duration())
	s.metrics.RecordWarnings(warnings)
	log.LogWarnings(warnings)
	if err != nil {
		log.LogFailure("inspection failed", err)
		s.writeError(w, http.StatusUnprocessableEntity, core.Kind(err), err)
		return
	}
	s.metrics.RecordRecords(summary.Records)

	resp := inspectResponse{Summary: summary, Warnings: make([]string, len(warnings))}
	for i, warn := range warnings {
		resp.Warnings[i] = warn.String()
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// converter reads the request body and applies the query options. On
// failure it writes the response and returns false.
func (s *Server) converter(w http.ResponseWriter, r *http.Request) (*dstv.Converter, bool) {
	body := http.MaxBytesReader(w, r.Body, s.opts.MaxBodyBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "too_large",
				fmt.Errorf("document exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		s.writeError(w, http.StatusBadRequest, "io", fmt.Errorf("%w: failed to read body: %w", core.ErrIO, err))
		return nil, false
	}
	s.metrics.RecordInput(len(data))

	conv := dstv.FromBytes(data).Style(s.opts.Style)

	q := r.URL.Query()
	if list := q.Get("faces"); list != "" {
		faces, err := dstv.ParseFaces(list)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, core.Kind(err), err)
			return nil, false
		}
		conv = conv.Faces(faces...)
	}
	if v := q.Get("bevels"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "bad_request", fmt.Errorf("%w: invalid bevels %q", errBadRequest, v))
			return nil, false
		}
		if !on {
			conv = conv.WithoutBevels()
		}
	}
	return conv, true
}

func (s *Server) writeError(w http.ResponseWriter, status int, kind string, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error(), Kind: kind})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to write response", zap.Error(err))
	}
}
