package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/casewalk/internal/config"
	"github.com/dgallion1/casewalk/internal/extract"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API of the extraction service.
type Server struct {
	router chi.Router
	pdf    extract.TextExtractor // serves /api/extract uploads
	scan   extract.TextExtractor // used by case scans
	stats  *extract.Stats
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. pdf extracts uploaded
// files in-process; scan is the configured extractor for directory walks.
func NewServer(pdf, scan extract.TextExtractor, stats *extract.Stats, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		pdf:   pdf,
		scan:  scan,
		stats: stats,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Post("/api/extract", s.handleExtract)
		r.Post("/api/cases/scan", s.handleScan)
		r.Get("/api/stats/extract", s.handleExtractStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
