package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"govariate/adapters/report"
	"govariate/app"
	"govariate/domain/core"
	"govariate/domain/run"
	apperrors "govariate/internal/errors"
	"govariate/ports"
)

const defaultListLimit = 50

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleDraw(w http.ResponseWriter, r *http.Request) {
	var req app.DrawRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.InvalidInput("invalid request body: "+err.Error()))
		return
	}

	result, err := s.draws.RunDraw(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDrawBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Requests []app.DrawRequest `json:"requests"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.InvalidInput("invalid request body: "+err.Error()))
		return
	}

	items, err := s.draws.RunBatch(r.Context(), req.Requests)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{"items": items})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	filters, err := listFiltersFromQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	runs, err := s.reader.ListRuns(r.Context(), filters)
	if err != nil {
		s.writeError(w, err)
		return
	}
	if runs == nil {
		runs = []run.Manifest{}
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"runs":  runs,
		"count": len(runs),
	})
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := core.ParseRunID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.InvalidInput("invalid run id: "+err.Error()))
		return
	}

	manifest, err := s.reader.GetRun(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, manifest)
}

func (s *Server) handleRunReport(w http.ResponseWriter, r *http.Request) {
	runID, err := core.ParseRunID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, apperrors.InvalidInput("invalid run id: "+err.Error()))
		return
	}

	manifest, err := s.reader.GetRun(r.Context(), runID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	switch format := r.URL.Query().Get("format"); format {
	case "", "markdown":
		w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
		w.Write([]byte(report.RenderMarkdown(manifest)))
	case "html":
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(report.RenderHTML(manifest))
	default:
		s.writeError(w, apperrors.InvalidInput("unknown report format "+strconv.Quote(format)))
	}
}

func listFiltersFromQuery(r *http.Request) (ports.RunFilters, error) {
	filters := ports.RunFilters{Limit: defaultListLimit}
	query := r.URL.Query()

	if kind := query.Get("kind"); kind != "" {
		if !run.ValidKind(kind) {
			return filters, apperrors.InvalidInput("unknown generator kind " + strconv.Quote(kind))
		}
		filters.Kind = kind
	}

	if raw := query.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filters, apperrors.InvalidInput("seed must be an integer")
		}
		filters.Seed = &seed
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return filters, apperrors.InvalidInput("limit must be a positive integer")
		}
		filters.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return filters, apperrors.InvalidInput("offset must be a non-negative integer")
		}
		filters.Offset = offset
	}

	return filters, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to encode response: %v", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)

	status := http.StatusInternalServerError
	switch code {
	case apperrors.CodeInvalidInput, apperrors.CodeValidationError:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("Request failed: %v", err)
	}

	s.writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  code,
	})
}
