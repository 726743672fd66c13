package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/dgallion1/casewalk/internal/walker"
)

type scanRequest struct {
	Pattern string `json:"pattern"`
}

// handleScan walks the configured base path and returns every case record.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	if s.cfg.BasePath == "" {
		jsonError(w, "no base path configured", http.StatusServiceUnavailable)
		return
	}

	var req scanRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, 64*1024)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	pattern := req.Pattern
	if pattern == "" {
		pattern = s.cfg.PDFPattern
	}

	policy, err := walker.ParsePolicy(s.cfg.OnExtractError)
	if err != nil {
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	wk, err := walker.New(s.scan, walker.Options{Pattern: pattern, OnExtractError: policy}, s.log)
	if err != nil {
		if errors.Is(err, walker.ErrInvalidPattern) {
			jsonError(w, err.Error(), http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	recs, err := wk.Walk(r.Context(), s.cfg.BasePath)
	if err != nil {
		s.log.Error("scan failed", "base_path", s.cfg.BasePath, "error", err)
		var extErr *walker.ExtractionError
		if errors.As(err, &extErr) {
			jsonError(w, err.Error(), http.StatusBadGateway)
			return
		}
		jsonError(w, "scan failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"cases": recs,
		"count": len(recs),
	})
}
