package server

import (
	"net/http"

	"github.com/woozymasta/geojson/internal/config"

	"github.com/rs/zerolog/log"
)

// ServerContext holds dependencies for request handlers.
type ServerContext struct {
	Config *config.Config
}

// NewServerContext initializes the context from a validated configuration.
func NewServerContext(cfg *config.Config) *ServerContext {
	if cfg == nil {
		cfg = config.Default()
	}

	log.Info().
		Strs("allowed_types", cfg.AllowedTypes).
		Bool("strict", cfg.Strict).
		Int64("max_body_size", cfg.MaxBodySize).
		Msg("Server context initialized")

	return &ServerContext{Config: cfg}
}

// Routes registers every endpoint and wraps the mux with request logging.
func (s *ServerContext) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/validate", s.HandleValidate)
	mux.HandleFunc("POST /api/wkt", s.HandleWKT)
	mux.HandleFunc("GET /healthz", s.HandleHealth)

	return RequestLogger(mux)
}
