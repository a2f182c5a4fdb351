// Package repository holds the write-side persistence adapters. Each
// repository is stateless and receives its connection (pool or transaction)
// per call, so the same instance works inside and outside a unit of work.
package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"tripslot/internal/infra"
)

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

func classifyPgError(err error) infra.RepositoryErrorKind {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return infra.KindForeignKeyViolated
		}
	}
	return infra.KindDBFailure
}
