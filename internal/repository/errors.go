package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// IsDuplicateKey reports whether err is a unique constraint violation
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// IsNotFound reports whether err means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// lastSequenceSelect selects the highest trailing number of column, 0 on an empty set.
// Numbers end in their zero padded sequence value (PP-2026-0042, WO-2026-0001-T03).
func lastSequenceSelect(column string) string {
	return "COALESCE(MAX(CAST(substring(" + column + " from '[0-9]+$') AS BIGINT)), 0)"
}
