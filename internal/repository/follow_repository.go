package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type FollowRepository struct {
	pool *pgxpool.Pool
}

func NewFollowRepository(pool *pgxpool.Pool) *FollowRepository {
	return &FollowRepository{pool: pool}
}

// Create inserts the follow edge if absent. The returned bool reports
// whether a row was actually inserted; a duplicate edge is not an
// exception, just zero rows.
func (r *FollowRepository) Create(ctx context.Context, followerID, followingID string) (bool, error) {
	const query = `
		INSERT INTO follows (follower_id, following_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, following_id) DO NOTHING
	`

	cmd, err := r.pool.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return false, translateError(err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete removes the edge if present; deleting a missing edge is a
// no-op reported through the bool.
func (r *FollowRepository) Delete(ctx context.Context, followerID, followingID string) (bool, error) {
	const query = `DELETE FROM follows WHERE follower_id = $1 AND following_id = $2`

	cmd, err := r.pool.Exec(ctx, query, followerID, followingID)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *FollowRepository) Exists(ctx context.Context, followerID, followingID string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM follows WHERE follower_id = $1 AND following_id = $2
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, followerID, followingID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *FollowRepository) ListFollowers(ctx context.Context, userID string) ([]models.UserSummary, error) {
	const query = `
		SELECT u.id, u.first_name, u.last_name, u.picture
		FROM follows f
		JOIN users u ON u.id = f.follower_id
		WHERE f.following_id = $1
		ORDER BY u.first_name, u.id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	followers := make([]models.UserSummary, 0)
	for rows.Next() {
		var follower models.UserSummary
		if err := rows.Scan(
			&follower.ID,
			&follower.FirstName,
			&follower.LastName,
			&follower.Picture,
		); err != nil {
			return nil, err
		}
		followers = append(followers, follower)
	}
	return followers, rows.Err()
}
