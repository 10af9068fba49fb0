package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type IncidentRepository interface {
	List(ctx context.Context) ([]model.Incident, error)
	FindByID(ctx context.Context, id int64) (*model.Incident, error)
	Create(ctx context.Context, incident *model.Incident) error
}

type pgIncidentRepository struct {
	db *sql.DB
}

func NewPgIncidentRepository(db *sql.DB) IncidentRepository {
	return &pgIncidentRepository{db: db}
}

const incidentSelect = `
	SELECT i.id, i.description, i.camp_id, i.severity, i.reported_by, i.status,
	       i.needs_medical, i.needs_evacuation, i.created_at, c.name AS camp_name
	FROM incidents i
	LEFT JOIN camps c ON i.camp_id = c.id`

func scanIncident(row interface{ Scan(...interface{}) error }, i *model.Incident) error {
	return row.Scan(&i.ID, &i.Description, &i.CampID, &i.Severity, &i.ReportedBy, &i.Status,
		&i.NeedsMedical, &i.NeedsEvacuation, &i.CreatedAt, &i.CampName)
}

func (r *pgIncidentRepository) List(ctx context.Context) ([]model.Incident, error) {
	rows, err := r.db.QueryContext(ctx, incidentSelect+" ORDER BY i.id")
	if err != nil {
		return nil, fmt.Errorf("pgIncidentRepository.List query: %w", err)
	}
	defer rows.Close()

	incidents := []model.Incident{}
	for rows.Next() {
		var i model.Incident
		if err := scanIncident(rows, &i); err != nil {
			return nil, fmt.Errorf("pgIncidentRepository.List scan: %w", err)
		}
		incidents = append(incidents, i)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgIncidentRepository.List rows.Err: %w", err)
	}
	return incidents, nil
}

func (r *pgIncidentRepository) FindByID(ctx context.Context, id int64) (*model.Incident, error) {
	incident := &model.Incident{}
	err := scanIncident(r.db.QueryRowContext(ctx, incidentSelect+" WHERE i.id = $1", id), incident)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("Incident")
		}
		return nil, fmt.Errorf("pgIncidentRepository.FindByID: %w", err)
	}
	return incident, nil
}

func (r *pgIncidentRepository) Create(ctx context.Context, i *model.Incident) error {
	b := newInsert("incidents")
	set(b, "description", i.Description)
	set(b, "camp_id", i.CampID)
	set(b, "severity", i.Severity)
	set(b, "reported_by", i.ReportedBy)
	set(b, "status", i.Status)
	set(b, "needs_medical", i.NeedsMedical)
	set(b, "needs_evacuation", i.NeedsEvacuation)

	id, createdAt, err := b.exec(ctx, r.db)
	if err != nil {
		return fmt.Errorf("pgIncidentRepository.Create: %w", err)
	}
	i.ID, i.CreatedAt = id, createdAt
	return nil
}
