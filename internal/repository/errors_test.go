package repository

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestTranslateError(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	if got := translateError(unique); !errors.Is(got, ErrDuplicate) {
		t.Fatalf("unique violation: got %v, want ErrDuplicate", got)
	}

	fk := &pgconn.PgError{Code: "23503", ConstraintName: "likes_post_id_fkey"}
	if got := translateError(fk); !errors.Is(got, ErrMissingReference) {
		t.Fatalf("fk violation: got %v, want ErrMissingReference", got)
	}

	other := &pgconn.PgError{Code: "42P01"}
	if got := translateError(other); !errors.Is(got, other) {
		t.Fatalf("unrelated pg error rewritten: got %v", got)
	}

	plain := errors.New("connection reset")
	if got := translateError(plain); !errors.Is(got, plain) {
		t.Fatalf("plain error rewritten: got %v", got)
	}

	if got := translateError(nil); got != nil {
		t.Fatalf("nil rewritten: got %v", got)
	}
}
