package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetByUser(ctx context.Context, userID string) (models.Profile, error) {
	const query = `
		SELECT user_id, status, position, company, country, education, about
		FROM profiles WHERE user_id = $1
	`

	row := r.pool.QueryRow(ctx, query, userID)
	var profile models.Profile
	if err := row.Scan(
		&profile.UserID,
		&profile.Status,
		&profile.Position,
		&profile.Company,
		&profile.Country,
		&profile.Education,
		&profile.About,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}

// ProfileUpdate is a partial update; nil fields keep their stored
// values.
type ProfileUpdate struct {
	Status    *string
	Position  *string
	Company   *string
	Country   *string
	Education *string
	About     *string
}

func (r *ProfileRepository) Update(ctx context.Context, userID string, upd ProfileUpdate) (models.Profile, error) {
	const query = `
		UPDATE profiles SET
			status = COALESCE($2, status),
			position = COALESCE($3, position),
			company = COALESCE($4, company),
			country = COALESCE($5, country),
			education = COALESCE($6, education),
			about = COALESCE($7, about)
		WHERE user_id = $1
		RETURNING user_id, status, position, company, country, education, about
	`

	row := r.pool.QueryRow(ctx, query,
		userID,
		upd.Status,
		upd.Position,
		upd.Company,
		upd.Country,
		upd.Education,
		upd.About,
	)

	var profile models.Profile
	if err := row.Scan(
		&profile.UserID,
		&profile.Status,
		&profile.Position,
		&profile.Company,
		&profile.Country,
		&profile.Education,
		&profile.About,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		return models.Profile{}, err
	}
	return profile, nil
}
