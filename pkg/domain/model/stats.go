package model

// CategoryCount holds the occurrence count of one category value,
// used by the top-N dashboard lists
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats holds the scalar dashboard aggregates, formatted for display.
// Fields are "N/A" when no eligible records exist.
type Stats struct {
	AverageProcessingTime string `json:"averageProcessingTime"`
	AverageResolutionTime string `json:"averageResolutionTime"`
	ResolutionRate        string `json:"resolutionRate"`
	OldestOpenIncidentAge string `json:"oldestOpenIncidentAge"`
}
