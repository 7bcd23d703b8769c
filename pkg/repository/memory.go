package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bdm-lab/mediascope/pkg/domain/interfaces"
	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

// Memory implements Repository with in-memory storage. Incidents are held
// most-recent-first; every read and write crosses the boundary as a deep
// copy, so callers can never mutate stored state through a returned record.
//
// The mutex guards memory safety only. Serial-number allocation over a
// snapshot still assumes a single logical writer at a time.
type Memory struct {
	mu        sync.RWMutex
	incidents []*model.Incident
	index     map[types.IncidentID]*model.Incident
}

// NewMemory creates a new memory repository
func NewMemory() *Memory {
	return &Memory{
		incidents: []*model.Incident{},
		index:     make(map[types.IncidentID]*model.Incident),
	}
}

// PutIncident saves an incident. A new ID is inserted at the front; an
// existing ID is replaced in place, keeping its position.
func (m *Memory) PutIncident(ctx context.Context, incident *model.Incident) error {
	if incident == nil {
		return goerr.New("incident is nil")
	}
	if incident.ID == "" {
		return goerr.New("incident ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := incident.Clone()
	if _, exists := m.index[incident.ID]; exists {
		for i, cur := range m.incidents {
			if cur.ID == incident.ID {
				m.incidents[i] = stored
				break
			}
		}
	} else {
		m.incidents = append([]*model.Incident{stored}, m.incidents...)
	}
	m.index[incident.ID] = stored

	return nil
}

// GetIncident retrieves an incident by ID
func (m *Memory) GetIncident(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	if id == "" {
		return nil, goerr.New("incident ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	incident, exists := m.index[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrIncidentNotFound, "failed to get incident",
			goerr.V("incidentID", id))
	}

	return incident.Clone(), nil
}

// ListIncidents returns a snapshot of all incidents, most recent first
func (m *Memory) ListIncidents(ctx context.Context) ([]*model.Incident, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	incidents := make([]*model.Incident, 0, len(m.incidents))
	for _, incident := range m.incidents {
		incidents = append(incidents, incident.Clone())
	}

	return incidents, nil
}

// Count returns the number of stored incidents (useful for testing)
func (m *Memory) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.incidents)
}

// Clear clears all data (useful for testing)
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incidents = []*model.Incident{}
	m.index = make(map[types.IncidentID]*model.Incident)
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

var _ interfaces.Repository = (*Memory)(nil) // Compile-time interface check
