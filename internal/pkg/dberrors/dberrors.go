package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const codeUndefinedTable = "42P01"

// IsUndefinedTableError reports whether err is PostgreSQL complaining that a relation
// does not exist, which in practice means migrations have not been applied.
func IsUndefinedTableError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable
}
