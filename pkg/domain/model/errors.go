package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrIncidentNotFound = goerr.New("incident not found")
)
