package interfaces

import (
	"context"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

// Repository defines the interface for incident storage
type Repository interface {
	// PutIncident inserts a new incident at the front of the logical
	// ordering, or replaces the stored incident in place when the ID
	// already exists.
	PutIncident(ctx context.Context, incident *model.Incident) error

	// GetIncident retrieves an incident by ID. Absence is signaled with
	// model.ErrIncidentNotFound.
	GetIncident(ctx context.Context, id types.IncidentID) (*model.Incident, error)

	// ListIncidents returns a snapshot of every incident. Callers must not
	// rely on the returned order.
	ListIncidents(ctx context.Context) ([]*model.Incident, error)

	// Close closes the repository connection
	Close() error
}
