package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m-mizutani/ctxlog"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
)

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// respondError maps domain errors onto HTTP statuses. Absence signals become
// 404, everything else from the use case layer is a 400-class caller fault
// here because no operation in the core has partial-failure semantics.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, model.ErrIncidentNotFound) {
		status = http.StatusNotFound
	}

	ctxlog.From(r.Context()).Debug("Request failed", "error", err, "status", status)
	respondJSON(w, r, status, map[string]string{"error": err.Error()})
}
