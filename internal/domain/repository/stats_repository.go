package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/RJohnPaul/dms/internal/domain/model"
)

type StatsRepository interface {
	DashboardStats(ctx context.Context) (*model.DashboardStats, error)
}

type pgStatsRepository struct {
	db *sql.DB
}

func NewPgStatsRepository(db *sql.DB) StatsRepository {
	return &pgStatsRepository{db: db}
}

// DashboardStats runs one aggregate query per table; the figures are not a
// consistent snapshot across tables.
func (r *pgStatsRepository) DashboardStats(ctx context.Context) (*model.DashboardStats, error) {
	s := &model.DashboardStats{}

	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2)
		FROM incidents`, model.IncidentStatusActive, model.IncidentStatusResolved).
		Scan(&s.TotalIncidents, &s.ActiveIncidents, &s.ResolvedIncidents)
	if err != nil {
		return nil, fmt.Errorf("pgStatsRepository.DashboardStats incidents: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(current_occupancy), 0) FROM camps`).
		Scan(&s.TotalCamps, &s.TotalPeople)
	if err != nil {
		return nil, fmt.Errorf("pgStatsRepository.DashboardStats camps: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM donors`).Scan(&s.TotalDonors)
	if err != nil {
		return nil, fmt.Errorf("pgStatsRepository.DashboardStats donors: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = $1),
		       COUNT(*) FILTER (WHERE status = $2)
		FROM requests`, model.RequestStatusPending, model.RequestStatusFulfilled).
		Scan(&s.TotalRequests, &s.PendingRequests, &s.FulfilledRequests)
	if err != nil {
		return nil, fmt.Errorf("pgStatsRepository.DashboardStats requests: %w", err)
	}

	return s, nil
}
