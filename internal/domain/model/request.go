package model

import "time"

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	RequestStatusPending   = "Pending"
	RequestStatusFulfilled = "Fulfilled"
)

// ReliefRequest is a camp asking for a quantity of a catalog resource.
type ReliefRequest struct {
	ID           int64      `json:"id"`
	CampID       *ID        `json:"camp_id,omitempty"`
	ResourceID   *ID        `json:"resource_id,omitempty"`
	Quantity     *int       `json:"quantity,omitempty"`
	Priority     *string    `json:"priority,omitempty"`
	Status       *string    `json:"status,omitempty"`
	Notes        *string    `json:"notes,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
	CampName     *string    `json:"camp_name,omitempty"`     // Read-only, joined
	ResourceName *string    `json:"resource_name,omitempty"` // Read-only, joined
}

// StatusUpdate is the body of PUT /api/requests/{id}/status and its response.
type StatusUpdate struct {
	ID     int64  `json:"id,omitempty"`
	Status string `json:"status"`
}
