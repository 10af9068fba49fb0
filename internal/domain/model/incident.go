package model

import "time"

const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"

	IncidentStatusActive   = "Active"
	IncidentStatusResolved = "Resolved"
)

// Incident is a reported event at (or near) a relief camp. Every column except
// the id is optional: a POST stores whatever subset the caller sent.
type Incident struct {
	ID              int64      `json:"id"`
	Description     *string    `json:"description,omitempty"`
	CampID          *ID        `json:"camp_id,omitempty"`
	Severity        *string    `json:"severity,omitempty"`
	ReportedBy      *string    `json:"reported_by,omitempty"`
	Status          *string    `json:"status,omitempty"`
	NeedsMedical    *bool      `json:"needs_medical,omitempty"`
	NeedsEvacuation *bool      `json:"needs_evacuation,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	CampName        *string    `json:"camp_name,omitempty"` // Read-only, joined from camps
}
