package pgerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const codeInvalidTextRepresentation = "22P02"

// IsInvalidID reports a malformed id passed to a uuid column. Such an id can
// never match a row, so repositories treat it as not found.
func IsInvalidID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeInvalidTextRepresentation
}
