// Package server handles HTTP requests and middleware.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/woozymasta/geojson/internal/lint"
)

// HandleValidate validates the request body and responds with a lint.Report.
// Invalid documents get 422 Unprocessable Entity.
func (s *ServerContext) HandleValidate(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	rep := lint.Inspect(data, requestFormat(r), s.Config)

	status := http.StatusOK
	if !rep.Valid {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, rep)
}

// HandleWKT responds with the WKT of every located geometry in the body,
// one per line.
func (s *ServerContext) HandleWKT(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	rep := lint.Inspect(data, requestFormat(r), s.Config)
	if !rep.Valid {
		writeJSON(w, http.StatusUnprocessableEntity, rep)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if rep.WKT == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	_, _ = io.WriteString(w, rep.WKT+"\n")
}

// HandleHealth reports liveness.
func (s *ServerContext) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readBody reads at most Config.MaxBodySize bytes of the request body.
func (s *ServerContext) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.Config.MaxBodySize)
	data, err := io.ReadAll(r.Body)
	if err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		http.Error(w, err.Error(), status)
		return nil, false
	}
	return data, true
}

// requestFormat selects YAML for YAML content types and JSON otherwise.
func requestFormat(r *http.Request) lint.Format {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && strings.Contains(mediaType, "yaml") {
		return lint.FormatYAML
	}
	return lint.FormatJSON
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(v)
}
