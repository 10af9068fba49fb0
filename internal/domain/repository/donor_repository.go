package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type DonorRepository interface {
	List(ctx context.Context) ([]model.Donor, error)
	FindByID(ctx context.Context, id int64) (*model.Donor, error)
	Create(ctx context.Context, donor *model.Donor) error
}

type pgDonorRepository struct {
	db *sql.DB
}

func NewPgDonorRepository(db *sql.DB) DonorRepository {
	return &pgDonorRepository{db: db}
}

const donorSelect = `
	SELECT id, name, email, phone, donation_type, donation_date, status, created_at
	FROM donors`

func scanDonor(row interface{ Scan(...interface{}) error }, d *model.Donor) error {
	return row.Scan(&d.ID, &d.Name, &d.Email, &d.Phone, &d.DonationType, &d.DonationDate, &d.Status, &d.CreatedAt)
}

func (r *pgDonorRepository) List(ctx context.Context) ([]model.Donor, error) {
	rows, err := r.db.QueryContext(ctx, donorSelect+" ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("pgDonorRepository.List query: %w", err)
	}
	defer rows.Close()

	donors := []model.Donor{}
	for rows.Next() {
		var d model.Donor
		if err := scanDonor(rows, &d); err != nil {
			return nil, fmt.Errorf("pgDonorRepository.List scan: %w", err)
		}
		donors = append(donors, d)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgDonorRepository.List rows.Err: %w", err)
	}
	return donors, nil
}

func (r *pgDonorRepository) FindByID(ctx context.Context, id int64) (*model.Donor, error) {
	donor := &model.Donor{}
	err := scanDonor(r.db.QueryRowContext(ctx, donorSelect+" WHERE id = $1", id), donor)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("Donor")
		}
		return nil, fmt.Errorf("pgDonorRepository.FindByID: %w", err)
	}
	return donor, nil
}

func (r *pgDonorRepository) Create(ctx context.Context, d *model.Donor) error {
	b := newInsert("donors")
	set(b, "name", d.Name)
	set(b, "email", d.Email)
	set(b, "phone", d.Phone)
	set(b, "donation_type", d.DonationType)
	set(b, "donation_date", d.DonationDate)
	set(b, "status", d.Status)

	id, createdAt, err := b.exec(ctx, r.db)
	if err != nil {
		return fmt.Errorf("pgDonorRepository.Create: %w", err)
	}
	d.ID, d.CreatedAt = id, createdAt
	return nil
}
