package model

import "time"

const (
	DonorStatusReceived  = "Received"
	DonorStatusInTransit = "In Transit"
	DonorStatusPending   = "Pending"
)

type Donor struct {
	ID           int64      `json:"id"`
	Name         *string    `json:"name,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	DonationType *string    `json:"donation_type,omitempty"`
	DonationDate *string    `json:"donation_date,omitempty"` // As entered, e.g. 2024-03-01
	Status       *string    `json:"status,omitempty"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}
