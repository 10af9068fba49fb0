package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type CampRepository interface {
	List(ctx context.Context) ([]model.Camp, error)
	FindByID(ctx context.Context, id int64) (*model.Camp, error)
	Create(ctx context.Context, camp *model.Camp) error
}

type pgCampRepository struct {
	db *sql.DB
}

func NewPgCampRepository(db *sql.DB) CampRepository {
	return &pgCampRepository{db: db}
}

const campSelect = `
	SELECT id, name, location, capacity, current_occupancy, contact_person,
	       contact_number, resources, status, created_at
	FROM camps`

func scanCamp(row interface{ Scan(...interface{}) error }, c *model.Camp) error {
	return row.Scan(&c.ID, &c.Name, &c.Location, &c.Capacity, &c.CurrentOccupancy, &c.ContactPerson,
		&c.ContactNumber, &c.Resources, &c.Status, &c.CreatedAt)
}

func (r *pgCampRepository) List(ctx context.Context) ([]model.Camp, error) {
	rows, err := r.db.QueryContext(ctx, campSelect+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("pgCampRepository.List query: %w", err)
	}
	defer rows.Close()

	camps := []model.Camp{}
	for rows.Next() {
		var c model.Camp
		if err := scanCamp(rows, &c); err != nil {
			return nil, fmt.Errorf("pgCampRepository.List scan: %w", err)
		}
		camps = append(camps, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgCampRepository.List rows.Err: %w", err)
	}
	return camps, nil
}

func (r *pgCampRepository) FindByID(ctx context.Context, id int64) (*model.Camp, error) {
	camp := &model.Camp{}
	err := scanCamp(r.db.QueryRowContext(ctx, campSelect+" WHERE id = $1", id), camp)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("Camp")
		}
		return nil, fmt.Errorf("pgCampRepository.FindByID: %w", err)
	}
	return camp, nil
}

func (r *pgCampRepository) Create(ctx context.Context, c *model.Camp) error {
	b := newInsert("camps")
	set(b, "name", c.Name)
	set(b, "location", c.Location)
	set(b, "capacity", c.Capacity)
	set(b, "current_occupancy", c.CurrentOccupancy)
	set(b, "contact_person", c.ContactPerson)
	set(b, "contact_number", c.ContactNumber)
	set(b, "resources", c.Resources)
	set(b, "status", c.Status)

	id, createdAt, err := b.exec(ctx, r.db)
	if err != nil {
		return fmt.Errorf("pgCampRepository.Create: %w", err)
	}
	c.ID, c.CreatedAt = id, createdAt
	return nil
}
