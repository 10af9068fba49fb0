package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

// CatalogRepository serves the read-only tables: the resource catalog and
// the vehicle fleet.
type CatalogRepository interface {
	ListResources(ctx context.Context) ([]model.Resource, error)
	ListVehicles(ctx context.Context) ([]model.Vehicle, error)
}

type pgCatalogRepository struct {
	db *sql.DB
}

func NewPgCatalogRepository(db *sql.DB) CatalogRepository {
	return &pgCatalogRepository{db: db}
}

func (r *pgCatalogRepository) ListResources(ctx context.Context) ([]model.Resource, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM resources ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListResources query: %w", err)
	}
	defer rows.Close()

	resources := []model.Resource{}
	for rows.Next() {
		var res model.Resource
		if err := rows.Scan(&res.ID, &res.Name); err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.ListResources scan: %w", err)
		}
		resources = append(resources, res)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListResources rows.Err: %w", err)
	}
	return resources, nil
}

func (r *pgCatalogRepository) ListVehicles(ctx context.Context) ([]model.Vehicle, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, vehicle_type, plate_number, status, created_at FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListVehicles query: %w", err)
	}
	defer rows.Close()

	vehicles := []model.Vehicle{}
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(&v.ID, &v.Name, &v.VehicleType, &v.PlateNumber, &v.Status, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgCatalogRepository.ListVehicles scan: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCatalogRepository.ListVehicles rows.Err: %w", err)
	}
	return vehicles, nil
}
