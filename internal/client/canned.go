package client

import (
	"time"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

func ptr[T any](v T) *T { return &v }

func day(s string) *time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return &t
}

var cannedCamps = []model.Camp{
	{
		ID: 1, Name: ptr("Riverside Community Center"), Location: ptr("North District"),
		Capacity: ptr(500), CurrentOccupancy: ptr(342),
		ContactPerson: ptr("Maria Lopez"), ContactNumber: ptr("+1234560001"),
		Resources: &model.CampResources{Food: ptr(75), Water: ptr(60), Medical: ptr(35)},
		Status: ptr("Active"), CreatedAt: day("2024-03-01 08:00"),
	},
	{
		ID: 2, Name: ptr("Hillside School Shelter"), Location: ptr("East Valley"),
		Capacity: ptr(300), CurrentOccupancy: ptr(287),
		ContactPerson: ptr("Ahmed Khan"), ContactNumber: ptr("+1234560002"),
		Resources: &model.CampResources{Food: ptr(30), Water: ptr(45), Medical: ptr(50)},
		Status: ptr("Active"), CreatedAt: day("2024-03-02 10:30"),
	},
	{
		ID: 3, Name: ptr("Stadium Relief Camp"), Location: ptr("Central City"),
		Capacity: ptr(1000), CurrentOccupancy: ptr(505),
		ContactPerson: ptr("Grace Chen"), ContactNumber: ptr("+1234560003"),
		Resources: &model.CampResources{Food: ptr(90), Water: ptr(85)},
		Status: ptr("Active"), CreatedAt: day("2024-03-03 14:15"),
	},
}

var cannedIncidents = []model.Incident{
	{
		ID: 1, Description: ptr("Flooding near the **east entrance**; water rising."), CampID: model.IDPtr(1),
		Severity: ptr(model.SeverityHigh), ReportedBy: ptr("John Volunteer"), Status: ptr(model.IncidentStatusActive),
		NeedsMedical: ptr(false), NeedsEvacuation: ptr(true), CreatedAt: day("2024-03-05 07:45"), CampName: ptr("Riverside Community Center"),
	},
	{
		ID: 2, Description: ptr("Several residents with fever symptoms."), CampID: model.IDPtr(2),
		Severity: ptr(model.SeverityMedium), ReportedBy: ptr("Sam User"), Status: ptr(model.IncidentStatusActive),
		NeedsMedical: ptr(true), NeedsEvacuation: ptr(false), CreatedAt: day("2024-03-05 11:20"), CampName: ptr("Hillside School Shelter"),
	},
	{
		ID: 3, Description: ptr("Generator failure, restored after repair."), CampID: model.IDPtr(3),
		Severity: ptr(model.SeverityLow), ReportedBy: ptr("David Driver"), Status: ptr(model.IncidentStatusResolved),
		NeedsMedical: ptr(false), NeedsEvacuation: ptr(false), CreatedAt: day("2024-03-06 09:00"), CampName: ptr("Stadium Relief Camp"),
	},
	{
		ID: 4, Description: ptr("Road blocked by debris on supply route."), CampID: model.IDPtr(2),
		Severity: ptr(model.SeverityHigh), ReportedBy: ptr("David Driver"), Status: ptr(model.IncidentStatusActive),
		NeedsMedical: ptr(false), NeedsEvacuation: ptr(false), CreatedAt: day("2024-03-06 16:40"), CampName: ptr("Hillside School Shelter"),
	},
	{
		ID: 5, Description: ptr("Shortage of clean drinking water."), CampID: model.IDPtr(1),
		Severity: ptr(model.SeverityMedium), ReportedBy: ptr("Sarah Beneficiary"), Status: ptr(model.IncidentStatusActive),
		NeedsMedical: ptr(false), NeedsEvacuation: ptr(false), CreatedAt: day("2024-03-07 08:10"), CampName: ptr("Riverside Community Center"),
	},
	{
		ID: 6, Description: ptr("Minor injury during tent setup."), CampID: model.IDPtr(3),
		Severity: ptr(model.SeverityLow), ReportedBy: ptr("John Volunteer"), Status: ptr(model.IncidentStatusResolved),
		NeedsMedical: ptr(true), NeedsEvacuation: ptr(false), CreatedAt: day("2024-03-07 13:05"), CampName: ptr("Stadium Relief Camp"),
	},
}

var cannedDonors = []model.Donor{
	{ID: 1, Name: ptr("Jane Donor"), Email: ptr("jane@example.com"), Phone: ptr("+1234567892"), DonationType: ptr("Food"),
		DonationDate: ptr("2024-03-02"), Status: ptr(model.DonorStatusReceived), CreatedAt: day("2024-03-02 09:00")},
	{ID: 2, Name: ptr("Helping Hands Foundation"), Email: ptr("contact@helpinghands.org"), DonationType: ptr("Medical"),
		DonationDate: ptr("2024-03-04"), Status: ptr(model.DonorStatusInTransit), CreatedAt: day("2024-03-04 12:00")},
	{ID: 3, Name: ptr("Local Grocers Co-op"), Email: ptr("info@grocers.example"), Phone: ptr("+1234560100"), DonationType: ptr("Water"),
		DonationDate: ptr("2024-03-06"), Status: ptr(model.DonorStatusPending), CreatedAt: day("2024-03-06 15:30")},
}

var cannedRequests = []model.ReliefRequest{
	{ID: 1, CampID: model.IDPtr(1), ResourceID: model.IDPtr(1), Quantity: ptr(200), Priority: ptr(model.PriorityHigh),
		Status: ptr(model.RequestStatusPending), Notes: ptr("Needed before the weekend."), CreatedAt: day("2024-03-05 08:00"),
		CampName: ptr("Riverside Community Center"), ResourceName: ptr("Bottled Water")},
	{ID: 2, CampID: model.IDPtr(2), ResourceID: model.IDPtr(4), Quantity: ptr(50), Priority: ptr(model.PriorityHigh),
		Status: ptr(model.RequestStatusPending), Notes: ptr("Fever outbreak, see incident #2."), CreatedAt: day("2024-03-05 12:00"),
		CampName: ptr("Hillside School Shelter"), ResourceName: ptr("Medical Supplies")},
	{ID: 3, CampID: model.IDPtr(3), ResourceID: model.IDPtr(6), Quantity: ptr(40), Priority: ptr(model.PriorityMedium),
		Status: ptr(model.RequestStatusFulfilled), CreatedAt: day("2024-03-04 10:00"),
		CampName: ptr("Stadium Relief Camp"), ResourceName: ptr("Tents")},
	{ID: 4, CampID: model.IDPtr(1), ResourceID: model.IDPtr(2), Quantity: ptr(120), Priority: ptr(model.PriorityLow),
		Status: ptr(model.RequestStatusPending), CreatedAt: day("2024-03-06 18:00"),
		CampName: ptr("Riverside Community Center"), ResourceName: ptr("Blankets")},
}

var cannedResources = func() []model.Resource {
	out := make([]model.Resource, len(model.DefaultResources))
	for i, name := range model.DefaultResources {
		out[i] = model.Resource{ID: int64(i + 1), Name: name}
	}
	return out
}()

var cannedVehicles = []model.Vehicle{
	{ID: 1, Name: ptr("Truck 1"), VehicleType: ptr("Truck"), PlateNumber: ptr("RLF-101"), Status: ptr("Available")},
	{ID: 2, Name: ptr("Ambulance A"), VehicleType: ptr("Ambulance"), PlateNumber: ptr("RLF-201"), Status: ptr("On Duty")},
	{ID: 3, Name: ptr("Van 3"), VehicleType: ptr("Van"), PlateNumber: ptr("RLF-303"), Status: ptr("Maintenance")},
}

var cannedAvailable = []model.ResourceQuantity{
	{Type: "Food", Quantity: 250},
	{Type: "Water", Quantity: 500},
	{Type: "Medical", Quantity: 150},
	{Type: "Shelter", Quantity: 100},
	{Type: "Clothing", Quantity: 300},
	{Type: "Other", Quantity: 200},
}

var cannedRequested = []model.ResourceQuantity{
	{Type: "Blankets", Quantity: 120},
	{Type: "Bottled Water", Quantity: 200},
	{Type: "Medical Supplies", Quantity: 50},
}

var cannedStats = model.DashboardStats{
	TotalIncidents:    6,
	ActiveIncidents:   4,
	ResolvedIncidents: 2,
	TotalCamps:        3,
	TotalPeople:       1134,
	TotalDonors:       3,
	TotalRequests:     4,
	PendingRequests:   3,
	FulfilledRequests: 1,
}
