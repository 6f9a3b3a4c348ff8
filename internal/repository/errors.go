package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmploymentNotFound = errors.New("employment not found")
	ErrPostNotFound       = errors.New("post not found")

	// ErrDuplicate maps postgres unique-constraint violations (code
	// 23505) so services can surface a conflict instead of a generic
	// data-layer failure.
	ErrDuplicate = errors.New("duplicate row")

	// ErrMissingReference maps foreign-key violations (code 23503),
	// e.g. liking a post that was never created.
	ErrMissingReference = errors.New("referenced row does not exist")
)

func translateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return ErrMissingReference
		}
	}
	return err
}
