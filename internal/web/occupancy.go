package web

import (
	"strings"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

const (
	lowResourceLevel     = 40
	missingResourceLevel = 50
)

// Occupancy is current*100/capacity rounded half up. A camp without capacity
// is 0% full.
func Occupancy(current, capacity int) int {
	if capacity <= 0 {
		return 0
	}
	return (current*200 + capacity) / (2 * capacity)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

type ResourceBar struct {
	Label   string
	Level   int
	Warning bool
}

// resourceBar renders a supply level. Missing levels show as 50 and are never
// flagged.
func resourceBar(label string, level *int) ResourceBar {
	if level == nil {
		return ResourceBar{Label: label, Level: missingResourceLevel}
	}
	return ResourceBar{Label: label, Level: *level, Warning: *level < lowResourceLevel}
}

type CampCard struct {
	ID            int64
	Name          string
	Location      string
	Capacity      int
	Occupied      int
	Occupancy     int
	ContactPerson string
	ContactNumber string
	Status        string
	Established   string
	Resources     []ResourceBar
}

func newCampCard(c model.Camp) CampCard {
	var res model.CampResources
	if c.Resources != nil {
		res = *c.Resources
	}
	card := CampCard{
		ID:            c.ID,
		Name:          display(c.Name),
		Location:      display(c.Location),
		Capacity:      deref(c.Capacity),
		Occupied:      deref(c.CurrentOccupancy),
		ContactPerson: orNA(display(c.ContactPerson)),
		ContactNumber: orNA(display(c.ContactNumber)),
		Status:        display(c.Status),
		Established:   display(c.CreatedAt),
		Resources: []ResourceBar{
			resourceBar("Food", res.Food),
			resourceBar("Water", res.Water),
			resourceBar("Medical", res.Medical),
		},
	}
	if card.Status == "" {
		card.Status = "Active"
	}
	card.Occupancy = Occupancy(card.Occupied, card.Capacity)
	return card
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

type CampStats struct {
	Camps     int
	Capacity  int
	Occupied  int
	Occupancy int
}

func summarizeCamps(camps []model.Camp) CampStats {
	st := CampStats{Camps: len(camps)}
	for _, c := range camps {
		st.Capacity += deref(c.Capacity)
		st.Occupied += deref(c.CurrentOccupancy)
	}
	st.Occupancy = Occupancy(st.Occupied, st.Capacity)
	return st
}

// filterCards keeps camps whose name or location contains q.
func filterCards(cards []CampCard, q string) []CampCard {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return cards
	}
	out := []CampCard{}
	for _, c := range cards {
		if strings.Contains(strings.ToLower(c.Name), q) || strings.Contains(strings.ToLower(c.Location), q) {
			out = append(out, c)
		}
	}
	return out
}
