package service

import (
	"context"
	"fmt"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/domain/repository"
)

type CampService struct {
	campRepo repository.CampRepository
}

func NewCampService(campRepo repository.CampRepository) *CampService {
	return &CampService{campRepo: campRepo}
}

func (s *CampService) List(ctx context.Context) ([]model.Camp, error) {
	return s.campRepo.List(ctx)
}

func (s *CampService) Get(ctx context.Context, id int64) (*model.Camp, error) {
	return s.campRepo.FindByID(ctx, id)
}

func (s *CampService) Create(ctx context.Context, c *model.Camp) (*model.Camp, error) {
	if err := s.campRepo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to create camp: %w", err)
	}
	return c, nil
}
