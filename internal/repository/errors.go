package repository

import (
	"errors"

	"catalog-service/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL SQLSTATE codes the repositories translate.
const (
	pgForeignKeyViolation       = "23503"
	pgUniqueViolation           = "23505"
	pgCheckViolation            = "23514"
	pgNotNullViolation          = "23502"
	pgInvalidTextRepresentation = "22P02"
	pgNumericValueOutOfRange    = "22003"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// translateError maps integrity and data errors to domain errors.
// onForeignKey is returned for foreign key violations. It returns nil when
// err is not one of the translated codes.
func translateError(err error, onForeignKey *model.DomainError) error {
	switch pgErrorCode(err) {
	case pgForeignKeyViolation:
		if onForeignKey != nil {
			return onForeignKey
		}
		return model.ErrConstraintViolation
	case pgUniqueViolation, pgCheckViolation, pgNotNullViolation:
		return model.ErrConstraintViolation
	case pgInvalidTextRepresentation, pgNumericValueOutOfRange:
		return model.ErrInvalidInput
	default:
		return nil
	}
}
