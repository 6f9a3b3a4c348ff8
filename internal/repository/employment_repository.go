package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type EmploymentRepository struct {
	pool *pgxpool.Pool
}

func NewEmploymentRepository(pool *pgxpool.Pool) *EmploymentRepository {
	return &EmploymentRepository{pool: pool}
}

func (r *EmploymentRepository) Create(ctx context.Context, employment models.Employment) error {
	const query = `
		INSERT INTO employments (id, user_id, company, position, employed_on)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		employment.ID,
		employment.UserID,
		employment.Company,
		employment.Position,
		employment.EmployedOn,
	)
	return translateError(err)
}

func (r *EmploymentRepository) ListByUser(ctx context.Context, userID string) ([]models.Employment, error) {
	const query = `
		SELECT id, user_id, company, position, employed_on
		FROM employments
		WHERE user_id = $1
		ORDER BY employed_on DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employments := make([]models.Employment, 0)
	for rows.Next() {
		var employment models.Employment
		if err := rows.Scan(
			&employment.ID,
			&employment.UserID,
			&employment.Company,
			&employment.Position,
			&employment.EmployedOn,
		); err != nil {
			return nil, err
		}
		employments = append(employments, employment)
	}
	return employments, rows.Err()
}

// DeleteOwned deletes an employment only when it belongs to ownerID.
// Scoping the delete itself is what makes the operation owner-only; no
// separate lookup races with the write.
func (r *EmploymentRepository) DeleteOwned(ctx context.Context, id string, ownerID string) error {
	const query = `DELETE FROM employments WHERE id = $1 AND user_id = $2`

	cmd, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrEmploymentNotFound
	}
	return nil
}
