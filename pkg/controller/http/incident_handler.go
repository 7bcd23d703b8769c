package http

import (
	"encoding/json"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
	"github.com/bdm-lab/mediascope/pkg/usecase"
)

// defaultTopN bounds the top-category lists when the caller does not ask
// for a specific size
const defaultTopN = 5

// IncidentHandler serves the incident lifecycle and dashboard routes
type IncidentHandler struct {
	incidentUC usecase.Incident
	statsUC    *usecase.StatsUseCase
}

// NewIncidentHandler creates a new IncidentHandler
func NewIncidentHandler(incidentUC usecase.Incident, statsUC *usecase.StatsUseCase) *IncidentHandler {
	return &IncidentHandler{
		incidentUC: incidentUC,
		statsUC:    statsUC,
	}
}

// HandleList returns every incident, newest reception first. Ordering for
// display is decided here, not by the store.
func (h *IncidentHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.incidentUC.ListIncidents(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].ReceivedAt.After(incidents[j].ReceivedAt)
	})

	respondJSON(w, r, http.StatusOK, incidents)
}

// HandleCreate submits a new incident report
func (h *IncidentHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.CreateIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(err, "invalid request body"))
		return
	}

	incident, err := h.incidentUC.CreateIncident(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusCreated, incident)
}

// HandleGet returns one incident by ID
func (h *IncidentHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	incident, err := h.incidentUC.GetIncident(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, incident)
}

type updateStatusRequest struct {
	Status types.IncidentStatus `json:"status"`
	Note   string               `json:"note,omitempty"`
}

// HandleUpdateStatus applies a status transition
func (h *IncidentHandler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(err, "invalid request body"))
		return
	}

	incident, err := h.incidentUC.UpdateStatus(r.Context(), id, req.Status, req.Note)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, incident)
}

type addActionRequest struct {
	Description string         `json:"description"`
	User        types.UserName `json:"user"`
}

// HandleAddAction logs an action against an incident. A first action on a
// new incident also starts processing, the orchestration rule of the
// dashboard's log form.
func (h *IncidentHandler) HandleAddAction(w http.ResponseWriter, r *http.Request) {
	id := types.IncidentID(chi.URLParam(r, "id"))

	var req addActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, goerr.Wrap(err, "invalid request body"))
		return
	}

	incident, err := h.incidentUC.LogAction(r.Context(), id, req.Description, req.User)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, incident)
}

// HandleStats returns the scalar dashboard aggregates
func (h *IncidentHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.incidentUC.ListIncidents(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, h.statsUC.Summary(incidents))
}

// HandleTopMaterials returns the most reported material categories
func (h *IncidentHandler) HandleTopMaterials(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.incidentUC.ListIncidents(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, h.statsUC.TopMediaMaterials(incidents, topN(r)))
}

// HandleTopPlatforms returns the most reported platforms
func (h *IncidentHandler) HandleTopPlatforms(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.incidentUC.ListIncidents(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondJSON(w, r, http.StatusOK, h.statsUC.TopPlatforms(incidents, topN(r)))
}

func topN(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultTopN
}
