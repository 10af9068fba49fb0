package model

import "time"

// Resource is an entry of the static supply catalog.
type Resource struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultResources seeds the catalog on first start.
var DefaultResources = []string{
	"Bottled Water",
	"Blankets",
	"First Aid Kits",
	"Medical Supplies",
	"Canned Food",
	"Tents",
}

type Vehicle struct {
	ID          int64      `json:"id"`
	Name        *string    `json:"name,omitempty"`
	VehicleType *string    `json:"vehicle_type,omitempty"`
	PlateNumber *string    `json:"plate_number,omitempty"`
	Status      *string    `json:"status,omitempty"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// ResourceQuantity is one bar of the available/requested resource charts.
type ResourceQuantity struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type DashboardStats struct {
	TotalIncidents    int `json:"totalIncidents"`
	ActiveIncidents   int `json:"activeIncidents"`
	ResolvedIncidents int `json:"resolvedIncidents"`
	TotalCamps        int `json:"totalCamps"`
	TotalPeople       int `json:"totalPeople"`
	TotalDonors       int `json:"totalDonors"`
	TotalRequests     int `json:"totalRequests"`
	PendingRequests   int `json:"pendingRequests"`
	FulfilledRequests int `json:"fulfilledRequests"`
}
