package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/corporoom/taskhub/internal/storage"
)

const (
	uniqueViolation    = "23505"
	exclusionViolation = "23P01"
	fkViolation        = "23503"
)

// mapError translates pgx errors into the storage sentinels
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ErrNotFound
	}

	var pge *pgconn.PgError
	if errors.As(err, &pge) {
		switch pge.Code {
		case uniqueViolation:
			return storage.ErrEmailTaken
		case exclusionViolation:
			return storage.ErrSubscriptionOverlap
		case fkViolation:
			return storage.ErrNotFound
		}
	}

	return err
}
