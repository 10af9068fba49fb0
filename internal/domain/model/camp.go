package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type Camp struct {
	ID               int64          `json:"id"`
	Name             *string        `json:"name,omitempty"`
	Location         *string        `json:"location,omitempty"`
	Capacity         *int           `json:"capacity,omitempty"`
	CurrentOccupancy *int           `json:"current_occupancy,omitempty"`
	ContactPerson    *string        `json:"contact_person,omitempty"`
	ContactNumber    *string        `json:"contact_number,omitempty"`
	Resources        *CampResources `json:"resources,omitempty"`
	Status           *string        `json:"status,omitempty"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
}

// CampResources holds supply levels as percentages (0-100). Stored as a JSON
// document in the camps.resources column.
type CampResources struct {
	Food    *int `json:"food,omitempty"`
	Water   *int `json:"water,omitempty"`
	Medical *int `json:"medical,omitempty"`
}

func (r CampResources) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (r *CampResources) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("CampResources.Scan: unsupported type %T", src)
	}
}
