package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/RJohnPaul/dms/internal/common"
	"github.com/RJohnPaul/dms/internal/domain/model"
)

type RequestRepository interface {
	List(ctx context.Context) ([]model.ReliefRequest, error)
	FindByID(ctx context.Context, id int64) (*model.ReliefRequest, error)
	Create(ctx context.Context, req *model.ReliefRequest) error
	// UpdateStatus touches exactly one row; zero affected rows is ErrNotFound.
	UpdateStatus(ctx context.Context, id int64, status string) error
	// QuantityByResource sums quantities per resource name for requests in the
	// given status.
	QuantityByResource(ctx context.Context, status string) ([]model.ResourceQuantity, error)
}

type pgRequestRepository struct {
	db *sql.DB
}

func NewPgRequestRepository(db *sql.DB) RequestRepository {
	return &pgRequestRepository{db: db}
}

// LEFT JOINs: a request pointing at a missing camp or resource is still
// listed, with a null name.
const requestSelect = `
	SELECT r.id, r.camp_id, r.resource_id, r.quantity, r.priority, r.status, r.notes, r.created_at,
	       c.name AS camp_name, rs.name AS resource_name
	FROM requests r
	LEFT JOIN camps c ON r.camp_id = c.id
	LEFT JOIN resources rs ON r.resource_id = rs.id`

func scanRequest(row interface{ Scan(...interface{}) error }, q *model.ReliefRequest) error {
	return row.Scan(&q.ID, &q.CampID, &q.ResourceID, &q.Quantity, &q.Priority, &q.Status, &q.Notes, &q.CreatedAt,
		&q.CampName, &q.ResourceName)
}

func (r *pgRequestRepository) List(ctx context.Context) ([]model.ReliefRequest, error) {
	rows, err := r.db.QueryContext(ctx, requestSelect+" ORDER BY r.id")
	if err != nil {
		return nil, fmt.Errorf("pgRequestRepository.List query: %w", err)
	}
	defer rows.Close()

	requests := []model.ReliefRequest{}
	for rows.Next() {
		var q model.ReliefRequest
		if err := scanRequest(rows, &q); err != nil {
			return nil, fmt.Errorf("pgRequestRepository.List scan: %w", err)
		}
		requests = append(requests, q)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgRequestRepository.List rows.Err: %w", err)
	}
	return requests, nil
}

func (r *pgRequestRepository) FindByID(ctx context.Context, id int64) (*model.ReliefRequest, error) {
	req := &model.ReliefRequest{}
	err := scanRequest(r.db.QueryRowContext(ctx, requestSelect+" WHERE r.id = $1", id), req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NotFound("Request")
		}
		return nil, fmt.Errorf("pgRequestRepository.FindByID: %w", err)
	}
	return req, nil
}

func (r *pgRequestRepository) Create(ctx context.Context, q *model.ReliefRequest) error {
	b := newInsert("requests")
	set(b, "camp_id", q.CampID)
	set(b, "resource_id", q.ResourceID)
	set(b, "quantity", q.Quantity)
	set(b, "priority", q.Priority)
	set(b, "status", q.Status)
	set(b, "notes", q.Notes)

	id, createdAt, err := b.exec(ctx, r.db)
	if err != nil {
		return fmt.Errorf("pgRequestRepository.Create: %w", err)
	}
	q.ID, q.CreatedAt = id, createdAt
	return nil
}

func (r *pgRequestRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE requests SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("pgRequestRepository.UpdateStatus: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("pgRequestRepository.UpdateStatus rows affected: %w", err)
	}
	if affected == 0 {
		return common.NotFound("Request")
	}
	return nil
}

func (r *pgRequestRepository) QuantityByResource(ctx context.Context, status string) ([]model.ResourceQuantity, error) {
	query := `
		SELECT rs.name, COALESCE(SUM(r.quantity), 0)
		FROM requests r
		JOIN resources rs ON r.resource_id = rs.id
		WHERE r.status = $1
		GROUP BY rs.name
		ORDER BY rs.name`
	rows, err := r.db.QueryContext(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("pgRequestRepository.QuantityByResource query: %w", err)
	}
	defer rows.Close()

	totals := []model.ResourceQuantity{}
	for rows.Next() {
		var rq model.ResourceQuantity
		if err := rows.Scan(&rq.Type, &rq.Quantity); err != nil {
			return nil, fmt.Errorf("pgRequestRepository.QuantityByResource scan: %w", err)
		}
		totals = append(totals, rq)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("pgRequestRepository.QuantityByResource rows.Err: %w", err)
	}
	return totals, nil
}
