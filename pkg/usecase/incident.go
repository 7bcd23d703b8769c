package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bdm-lab/mediascope/pkg/domain/interfaces"
	"github.com/bdm-lab/mediascope/pkg/domain/model"
	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

// serialPrefix is the fixed leading segment of every serial number
const serialPrefix = "BDM-"

// serialSeqDigits is the minimum width of the numeric suffix; sequences
// beyond 9999 simply widen.
const serialSeqDigits = 4

// Clock supplies the current time to the use cases
type Clock func() time.Time

// IncidentUseCase implements the Incident interface over a repository
type IncidentUseCase struct {
	repo  interfaces.Repository
	clock Clock
}

// IncidentOption is a functional option for configuring IncidentUseCase
type IncidentOption func(*IncidentUseCase)

// WithClock overrides the time source, mainly for tests
func WithClock(clock Clock) IncidentOption {
	return func(u *IncidentUseCase) {
		u.clock = clock
	}
}

// NewIncident creates a new IncidentUseCase instance
func NewIncident(repo interfaces.Repository, opts ...IncidentOption) *IncidentUseCase {
	u := &IncidentUseCase{
		repo:  repo,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CreateIncident allocates the next serial number for the request's
// category pair and stores a new incident in the initial state
func (u *IncidentUseCase) CreateIncident(ctx context.Context, req *model.CreateIncidentRequest) (*model.Incident, error) {
	if req == nil {
		return nil, goerr.New("create request is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid create request")
	}

	serial, err := u.nextSerialNumber(ctx, req.MediaMaterial, req.Platform)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to allocate serial number")
	}

	incident, err := model.NewIncident(serial, req, u.clock())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create incident")
	}

	if err := u.repo.PutIncident(ctx, incident); err != nil {
		return nil, goerr.Wrap(err, "failed to store incident")
	}

	return incident, nil
}

// nextSerialNumber derives the next serial for a category pair by scanning
// the live record set. There is no persisted counter: the maximum parsed
// suffix under the prefix plus one wins, so the sequence stays correct under
// arbitrary insertion history. Not safe under concurrent allocation for the
// same prefix; the store assumes a single logical writer.
func (u *IncidentUseCase) nextSerialNumber(ctx context.Context, material types.MediaMaterial, platform types.Platform) (types.SerialNumber, error) {
	incidents, err := u.repo.ListIncidents(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to list incidents")
	}

	prefix := serialPrefix + material.Code() + platform.Code()

	maxSeq := 0
	for _, incident := range incidents {
		serial := incident.SerialNumber.String()
		if !strings.HasPrefix(serial, prefix) {
			continue
		}
		// Unparseable suffixes are excluded from the scan, not treated as
		// corruption
		seq, err := strconv.Atoi(serial[len(prefix):])
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}

	return types.SerialNumber(fmt.Sprintf("%s%0*d", prefix, serialSeqDigits, maxSeq+1)), nil
}

// GetIncident retrieves a single incident by ID
func (u *IncidentUseCase) GetIncident(ctx context.Context, id types.IncidentID) (*model.Incident, error) {
	incident, err := u.repo.GetIncident(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get incident")
	}
	return incident, nil
}

// ListIncidents returns a snapshot of every incident
func (u *IncidentUseCase) ListIncidents(ctx context.Context) ([]*model.Incident, error) {
	incidents, err := u.repo.ListIncidents(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list incidents")
	}
	return incidents, nil
}

var _ Incident = (*IncidentUseCase)(nil) // Compile-time interface check
