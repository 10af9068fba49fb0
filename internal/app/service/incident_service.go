package service

import (
	"context"
	"fmt"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/domain/repository"
)

type IncidentService struct {
	incidentRepo repository.IncidentRepository
}

func NewIncidentService(incidentRepo repository.IncidentRepository) *IncidentService {
	return &IncidentService{incidentRepo: incidentRepo}
}

func (s *IncidentService) List(ctx context.Context) ([]model.Incident, error) {
	return s.incidentRepo.List(ctx)
}

func (s *IncidentService) Get(ctx context.Context, id int64) (*model.Incident, error) {
	return s.incidentRepo.FindByID(ctx, id)
}

// Create stores the incident as given. Fields the caller left out fall back
// to the column defaults.
func (s *IncidentService) Create(ctx context.Context, i *model.Incident) (*model.Incident, error) {
	if err := s.incidentRepo.Create(ctx, i); err != nil {
		return nil, fmt.Errorf("failed to create incident: %w", err)
	}
	return i, nil
}
