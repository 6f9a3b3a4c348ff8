package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ilyahahaha/vneshtata-new/internal/models"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user together with an empty profile in one
// transaction. A registered user without a profile must be impossible.
func (r *UserRepository) Create(ctx context.Context, user models.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const insertUser = `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, picture, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW(), NOW()
		)
	`
	if _, err := tx.Exec(ctx, insertUser,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.Picture,
	); err != nil {
		return translateError(err)
	}

	const insertProfile = `
		INSERT INTO profiles (user_id, country) VALUES ($1, $2)
	`
	if _, err := tx.Exec(ctx, insertProfile, user.ID, models.CountryNotSelected); err != nil {
		return translateError(err)
	}

	return tx.Commit(ctx)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	const query = `
		SELECT id, first_name, last_name, email, password_hash, picture, created_at, updated_at
		FROM users WHERE email = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (models.User, error) {
	const query = `
		SELECT id, first_name, last_name, email, password_hash, picture, created_at, updated_at
		FROM users WHERE id = $1
	`
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) scanOne(row pgx.Row) (models.User, error) {
	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Picture,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// ListIDs returns every taken user identifier.
func (r *UserRepository) ListIDs(ctx context.Context) ([]string, error) {
	const query = `SELECT id FROM users ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// UserUpdate carries the optional account fields of an update; nil
// means keep the stored value. NewID must always be set (it may equal
// the current id).
type UserUpdate struct {
	NewID        string
	FirstName    *string
	LastName     *string
	Email        *string
	PasswordHash []byte
}

// Update reassigns account fields. Identifier changes cascade to owned
// rows via the schema's ON UPDATE CASCADE foreign keys; a taken id or
// email surfaces as ErrDuplicate.
func (r *UserRepository) Update(ctx context.Context, id string, upd UserUpdate) (models.User, error) {
	const query = `
		UPDATE users SET
			id = $2,
			first_name = COALESCE($3, first_name),
			last_name = COALESCE($4, last_name),
			email = COALESCE($5, email),
			password_hash = COALESCE($6, password_hash),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, password_hash, picture, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		id,
		upd.NewID,
		upd.FirstName,
		upd.LastName,
		upd.Email,
		upd.PasswordHash,
	)

	var user models.User
	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.Picture,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, translateError(err)
	}
	return user, nil
}

func (r *UserRepository) UpdatePicture(ctx context.Context, id string, picture string) error {
	const query = `UPDATE users SET picture = $2, updated_at = NOW() WHERE id = $1`

	cmd, err := r.pool.Exec(ctx, query, id, picture)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

// ListPictures returns every non-null picture URL; the avatar cleanup
// job diffs the bucket against this set.
func (r *UserRepository) ListPictures(ctx context.Context) ([]string, error) {
	const query = `SELECT picture FROM users WHERE picture IS NOT NULL`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pictures []string
	for rows.Next() {
		var picture string
		if err := rows.Scan(&picture); err != nil {
			return nil, err
		}
		pictures = append(pictures, picture)
	}
	return pictures, rows.Err()
}
