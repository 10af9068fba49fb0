package service

import (
	"context"

	"github.com/RJohnPaul/dms/internal/domain/model"
	"github.com/RJohnPaul/dms/internal/domain/repository"
)

// availableSupplies are fixed figures; there is no inventory table behind them.
var availableSupplies = []model.ResourceQuantity{
	{Type: "Food", Quantity: 250},
	{Type: "Water", Quantity: 500},
	{Type: "Medical", Quantity: 150},
	{Type: "Shelter", Quantity: 100},
	{Type: "Clothing", Quantity: 300},
	{Type: "Other", Quantity: 200},
}

type ResourceService struct {
	catalogRepo repository.CatalogRepository
	requestRepo repository.RequestRepository
}

func NewResourceService(catalogRepo repository.CatalogRepository, requestRepo repository.RequestRepository) *ResourceService {
	return &ResourceService{catalogRepo: catalogRepo, requestRepo: requestRepo}
}

func (s *ResourceService) ListResources(ctx context.Context) ([]model.Resource, error) {
	return s.catalogRepo.ListResources(ctx)
}

func (s *ResourceService) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	return s.catalogRepo.ListVehicles(ctx)
}

func (s *ResourceService) Available() []model.ResourceQuantity {
	return append([]model.ResourceQuantity(nil), availableSupplies...)
}

// Requested sums the quantities of still-pending requests per resource.
func (s *ResourceService) Requested(ctx context.Context) ([]model.ResourceQuantity, error) {
	return s.requestRepo.QuantityByResource(ctx, model.RequestStatusPending)
}
