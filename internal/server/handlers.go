package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/alexanderramin/checkpoint/internal/domain"
	"github.com/alexanderramin/checkpoint/internal/service"
	"github.com/go-chi/chi/v5"
)

const (
	// HTTPOrigin tags submissions received over the API.
	HTTPOrigin = "http"

	defaultSubmissionLimit = 20
	maxSubmissionLimit     = 200
	maxBodyBytes           = 1 << 20
)

// Handler serves the checklist API.
type Handler struct {
	svc     service.ChecklistService
	logger  *slog.Logger
	metrics *Metrics
}

// NewHandler creates a Handler over svc.
func NewHandler(svc service.ChecklistService, logger *slog.Logger, metrics *Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	return &Handler{svc: svc, logger: logger, metrics: metrics}
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status string `json:"status"`
	Checks int    `json:"checks"`
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	checks, err := h.svc.ListChecks(r.Context())
	if err != nil {
		h.logger.Error("health check failed", "error", err)
		WriteProblem(w, r, http.StatusServiceUnavailable, "Store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: len(checks)})
}

func (h *Handler) ListChecks(w http.ResponseWriter, r *http.Request) {
	checks, err := h.svc.ListChecks(r.Context())
	if err != nil {
		h.logger.Error("list checks failed", "error", err)
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checks)
}

func (h *Handler) AddCheck(w http.ResponseWriter, r *http.Request) {
	var c domain.Check
	if !decodeBody(w, r, &c) {
		return
	}
	if err := h.svc.AddCheck(r.Context(), c); err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) DeleteCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveCheck(r.Context(), chi.URLParam(r, "id")); err != nil {
		MapServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SubmitResults(w http.ResponseWriter, r *http.Request) {
	var results []domain.Result
	if !decodeBody(w, r, &results) {
		return
	}

	sub, err := h.svc.RecordSubmission(r.Context(), HTTPOrigin, results)
	if err != nil {
		MapServiceError(w, r, err)
		return
	}

	yes, no := sub.Counts()
	h.metrics.Submissions.WithLabelValues(string(domain.ResultYes)).Add(float64(yes))
	h.metrics.Submissions.WithLabelValues(string(domain.ResultNo)).Add(float64(no))
	writeJSON(w, http.StatusCreated, sub)
}

func (h *Handler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	limit := defaultSubmissionLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteProblem(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxSubmissionLimit)
	}

	subs, err := h.svc.ListSubmissions(r.Context(), limit)
	if err != nil {
		h.logger.Error("list submissions failed", "error", err)
		MapServiceError(w, r, err)
		return
	}
	if subs == nil {
		subs = []*domain.Submission{}
	}
	writeJSON(w, http.StatusOK, subs)
}

func (h *Handler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	sub, err := h.svc.GetSubmission(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		MapServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sub)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		WriteProblem(w, r, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
