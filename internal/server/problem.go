package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/alexanderramin/checkpoint/internal/repository"
	"github.com/alexanderramin/checkpoint/internal/service"
)

const problemTypeBase = "https://checkpoint.dev/problems/"

// Problem is an RFC 7807 Problem Details body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
}

// problemKind names the problem type and title for a status the API emits.
// Anything else falls back to the standard status text.
func problemKind(status int) (slug, title string) {
	switch status {
	case http.StatusBadRequest:
		return "malformed-request", "Malformed Request"
	case http.StatusNotFound:
		return "not-found", "Not Found"
	case http.StatusUnprocessableEntity:
		return "invalid-checklist", "Invalid Checklist Data"
	case http.StatusServiceUnavailable:
		return "backend-unavailable", "Checklist Backend Unavailable"
	default:
		return "internal", http.StatusText(status)
	}
}

// WriteProblem writes status as an application/problem+json response.
func WriteProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	slug, title := problemKind(status)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(Problem{
		Type:     problemTypeBase + slug,
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: r.URL.Path,
	})
	if err != nil {
		slog.Error("failed to encode problem response", "error", err)
	}
}

// MapServiceError maps a checklist service error onto a problem response.
// Store failures are reported without detail.
func MapServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		WriteProblem(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		WriteProblem(w, r, http.StatusNotFound, "No such check or submission")
	default:
		WriteProblem(w, r, http.StatusInternalServerError, "Internal Server Error")
	}
}
