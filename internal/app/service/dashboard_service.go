package service

import (
	"context"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/domain/repository"
)

type DashboardService struct {
	statsRepo repository.StatsRepository
}

func NewDashboardService(statsRepo repository.StatsRepository) *DashboardService {
	return &DashboardService{statsRepo: statsRepo}
}

func (s *DashboardService) Stats(ctx context.Context) (*model.DashboardStats, error) {
	return s.statsRepo.DashboardStats(ctx)
}
