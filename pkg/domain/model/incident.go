package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/bdm-lab/mediascope/pkg/domain/types"
)

// ActionEntry is one immutable note in an incident's history. Entries are
// only ever appended, oldest first.
type ActionEntry struct {
	Timestamp   time.Time      `json:"timestamp"`
	Description string         `json:"description"`
	User        types.UserName `json:"user"`
}

// Incident represents a tracked media-monitoring incident
type Incident struct {
	ID           types.IncidentID     `json:"id"`
	SerialNumber types.SerialNumber   `json:"serialNumber"`
	Status       types.IncidentStatus `json:"status"`

	MediaMaterial types.MediaMaterial `json:"mediaMaterial"`
	MaterialOther string              `json:"materialOther,omitempty"` // free text when material is "other"
	Platform      types.Platform      `json:"platform"`
	PlatformOther string              `json:"platformOther,omitempty"` // free text when platform is "other"

	Description    string         `json:"description"`
	IssueLink      string         `json:"issueLink,omitempty"`
	ScreenshotLink string         `json:"screenshotLink,omitempty"` // URL or embedded image payload, opaque here
	ReportedBy     types.UserName `json:"reportedBy"`

	ReceivedAt          time.Time  `json:"receivedAt"`
	StartedProcessingAt *time.Time `json:"startedProcessingAt,omitempty"`
	ClosedAt            *time.Time `json:"closedAt,omitempty"`

	ActionsLog []ActionEntry `json:"actionsLog"`
}

// CreateIncidentRequest carries the caller-supplied fields for a new incident
type CreateIncidentRequest struct {
	MediaMaterial  types.MediaMaterial `json:"mediaMaterial"`
	MaterialOther  string              `json:"materialOther,omitempty"`
	Platform       types.Platform      `json:"platform"`
	PlatformOther  string              `json:"platformOther,omitempty"`
	Description    string              `json:"description"`
	IssueLink      string              `json:"issueLink,omitempty"`
	ScreenshotLink string              `json:"screenshotLink,omitempty"`
	ReportedBy     types.UserName      `json:"reportedBy"`
}

// Validate validates the create request
func (r *CreateIncidentRequest) Validate() error {
	if r.Description == "" {
		return goerr.New("description is required")
	}
	if r.ReportedBy == "" {
		return goerr.New("reporter name is required")
	}
	return nil
}

// NewIncident creates a new Incident in the initial state. The serial number
// must already be allocated; category values without an assigned serial code
// are accepted as-is (the code tables fail closed).
func NewIncident(serial types.SerialNumber, req *CreateIncidentRequest, now time.Time) (*Incident, error) {
	if serial == "" {
		return nil, goerr.New("serial number is required")
	}
	if req == nil {
		return nil, goerr.New("create request is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid create request")
	}

	return &Incident{
		ID:             types.NewIncidentID(),
		SerialNumber:   serial,
		Status:         types.IncidentStatusNew,
		MediaMaterial:  req.MediaMaterial,
		MaterialOther:  req.MaterialOther,
		Platform:       req.Platform,
		PlatformOther:  req.PlatformOther,
		Description:    req.Description,
		IssueLink:      req.IssueLink,
		ScreenshotLink: req.ScreenshotLink,
		ReportedBy:     req.ReportedBy,
		ReceivedAt:     now,
		ActionsLog:     []ActionEntry{},
	}, nil
}

// Clone returns a structurally independent copy of the incident. Repository
// reads and writes must pass through it so callers can never reach stored
// state by reference.
func (x *Incident) Clone() *Incident {
	if x == nil {
		return nil
	}

	c := *x
	if x.StartedProcessingAt != nil {
		t := *x.StartedProcessingAt
		c.StartedProcessingAt = &t
	}
	if x.ClosedAt != nil {
		t := *x.ClosedAt
		c.ClosedAt = &t
	}
	c.ActionsLog = make([]ActionEntry, len(x.ActionsLog))
	copy(c.ActionsLog, x.ActionsLog)

	return &c
}

// AppendAction appends one action entry to the log
func (x *Incident) AppendAction(now time.Time, description string, user types.UserName) {
	x.ActionsLog = append(x.ActionsLog, ActionEntry{
		Timestamp:   now,
		Description: description,
		User:        user,
	})
}
