package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/domain/repository"
)

type RequestService struct {
	requestRepo repository.RequestRepository
}

func NewRequestService(requestRepo repository.RequestRepository) *RequestService {
	return &RequestService{requestRepo: requestRepo}
}

func (s *RequestService) List(ctx context.Context) ([]model.ReliefRequest, error) {
	return s.requestRepo.List(ctx)
}

func (s *RequestService) Get(ctx context.Context, id int64) (*model.ReliefRequest, error) {
	return s.requestRepo.FindByID(ctx, id)
}

func (s *RequestService) Create(ctx context.Context, q *model.ReliefRequest) (*model.ReliefRequest, error) {
	if err := s.requestRepo.Create(ctx, q); err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return q, nil
}

// UpdateStatus is the only mutation the system supports. Concurrent updates
// of the same request both succeed; the last one wins.
func (s *RequestService) UpdateStatus(ctx context.Context, id int64, status string) (*model.StatusUpdate, error) {
	if strings.TrimSpace(status) == "" {
		return nil, common.Errorf("status is required: %w", common.ErrBadRequest)
	}
	if err := s.requestRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return &model.StatusUpdate{ID: id, Status: status}, nil
}
