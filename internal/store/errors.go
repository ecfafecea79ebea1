// File: internal/store/errors.go
package store

import (
	"errors"
	"fmt"

	"urenregistratie/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// wrapErr tags a driver error with the model error kind callers match on.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	case errors.As(err, &pgErr) && pgErr.Code == uniqueViolation:
		return fmt.Errorf("%s: %w", op, model.ErrConflict)
	case errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation:
		// the referenced user is gone
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return fmt.Errorf("%s: %w: %w", op, model.ErrStore, err)
}

// mustAffect turns "0 rows affected" into ErrNotFound.
func mustAffect(op string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, model.ErrNotFound)
	}
	return nil
}
