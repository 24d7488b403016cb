package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/records"
)

const pgUniqueViolation = "23505"

// translate maps driver errors onto the records sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return records.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return records.DuplicateError{Constraint: pgErr.ConstraintName}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return records.DuplicateError{}
	}

	return err
}
