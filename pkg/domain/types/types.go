package types

import (
	"github.com/google/uuid"
)

// IncidentID represents an incident identifier
type IncidentID string

// String returns the string representation
func (id IncidentID) String() string {
	return string(id)
}

// NewIncidentID creates a new IncidentID
func NewIncidentID() IncidentID {
	return IncidentID(uuid.New().String())
}

// SerialNumber represents a human-readable incident serial number
// in the form BDM-<material code><platform code><4-digit sequence>
type SerialNumber string

// String returns the string representation
func (s SerialNumber) String() string {
	return string(s)
}

// UserName represents a display name of an acting user
type UserName string

// String returns the string representation
func (n UserName) String() string {
	return string(n)
}

// SystemUser is the synthetic author of automatically generated action entries
const SystemUser UserName = "system"
