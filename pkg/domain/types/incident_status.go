package types

// IncidentStatus represents the status of an incident
type IncidentStatus string

const (
	IncidentStatusNew        IncidentStatus = "new"
	IncidentStatusProcessing IncidentStatus = "processing"
	IncidentStatusClosed     IncidentStatus = "closed"
)

// String returns the string representation of the status
func (s IncidentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is valid
func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusNew, IncidentStatusProcessing, IncidentStatusClosed:
		return true
	default:
		return false
	}
}

// IsOpen reports whether the status counts as an open incident
func (s IncidentStatus) IsOpen() bool {
	return s == IncidentStatusNew || s == IncidentStatusProcessing
}

// DefaultNote returns the default action-log description for a transition
// into this status
func (s IncidentStatus) DefaultNote() string {
	switch s {
	case IncidentStatusNew:
		return "Incident reported"
	case IncidentStatusProcessing:
		return "Processing started"
	case IncidentStatusClosed:
		return "Incident closed"
	default:
		return "Status changed to " + string(s)
	}
}
