package service

import (
	"context"
	"fmt"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/domain/repository"
)

type DonorService struct {
	donorRepo repository.DonorRepository
}

func NewDonorService(donorRepo repository.DonorRepository) *DonorService {
	return &DonorService{donorRepo: donorRepo}
}

func (s *DonorService) List(ctx context.Context) ([]model.Donor, error) {
	return s.donorRepo.List(ctx)
}

func (s *DonorService) Get(ctx context.Context, id int64) (*model.Donor, error) {
	return s.donorRepo.FindByID(ctx, id)
}

func (s *DonorService) Create(ctx context.Context, d *model.Donor) (*model.Donor, error) {
	if err := s.donorRepo.Create(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to create donor: %w", err)
	}
	return d, nil
}
