package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

// UpdateStatus sets the status of an incident and records the change in the
// action log. The mutator is deliberately permissive: it does not forbid
// arbitrary jumps (new straight to closed, reopening closed); restricting
// allowed transitions is the collaborator's responsibility.
//
// Entering "processing" sets StartedProcessingAt only the first time.
// Entering "closed" sets ClosedAt every time, so re-closing refreshes the
// resolution timestamp.
func (u *IncidentUseCase) UpdateStatus(ctx context.Context, id types.IncidentID, status types.IncidentStatus, note string) (*model.Incident, error) {
	if !status.IsValid() {
		return nil, goerr.New("invalid status", goerr.V("status", status))
	}

	incident, err := u.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident")
	}

	now := u.clock()
	incident.Status = status

	switch status {
	case types.IncidentStatusProcessing:
		if incident.StartedProcessingAt == nil {
			incident.StartedProcessingAt = &now
		}
	case types.IncidentStatusClosed:
		incident.ClosedAt = &now
	}

	if note == "" {
		note = status.DefaultNote()
	}
	incident.AppendAction(now, note, types.SystemUser)

	if err := u.repo.PutIncident(ctx, incident); err != nil {
		return nil, goerr.Wrap(err, "failed to store incident")
	}

	ctxlog.From(ctx).Debug("incident status updated",
		"incidentID", id,
		"status", status,
	)

	return incident, nil
}

// AddAction appends one action entry to an incident's log. Status and
// timestamp fields are left untouched.
func (u *IncidentUseCase) AddAction(ctx context.Context, id types.IncidentID, description string, user types.UserName) (*model.Incident, error) {
	if description == "" {
		return nil, goerr.New("action description is required")
	}
	if user == "" {
		return nil, goerr.New("acting user name is required")
	}

	incident, err := u.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident")
	}

	incident.AppendAction(u.clock(), description, user)

	if err := u.repo.PutIncident(ctx, incident); err != nil {
		return nil, goerr.Wrap(err, "failed to store incident")
	}

	return incident, nil
}

// LogAction is the boundary orchestration between the log form and the
// lifecycle: it appends the action entry, and when the incident was still
// new it follows up by moving it to processing. The coupling lives here,
// not inside the mutator, so the policy stays explicit and swappable.
func (u *IncidentUseCase) LogAction(ctx context.Context, id types.IncidentID, description string, user types.UserName) (*model.Incident, error) {
	incident, err := u.AddAction(ctx, id, description, user)
	if err != nil {
		return nil, err
	}

	if incident.Status != types.IncidentStatusNew {
		return incident, nil
	}

	incident, err = u.UpdateStatus(ctx, id, types.IncidentStatusProcessing, "")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to start processing after first action")
	}

	return incident, nil
}
