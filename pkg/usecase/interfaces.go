package usecase

import (
	"context"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

// Incident defines the incident lifecycle operations exposed to collaborators
type Incident interface {
	CreateIncident(ctx context.Context, req *model.CreateIncidentRequest) (*model.Incident, error)
	GetIncident(ctx context.Context, id types.IncidentID) (*model.Incident, error)
	ListIncidents(ctx context.Context) ([]*model.Incident, error)
	UpdateStatus(ctx context.Context, id types.IncidentID, status types.IncidentStatus, note string) (*model.Incident, error)
	AddAction(ctx context.Context, id types.IncidentID, description string, user types.UserName) (*model.Incident, error)
	LogAction(ctx context.Context, id types.IncidentID, description string, user types.UserName) (*model.Incident, error)
}
