package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// ConflictError is a unique-constraint violation reduced to the column that
// triggered it. Column is empty when the violated constraint could not be
// attributed to a known column.
type ConflictError struct {
	Column string
}

func (e *ConflictError) Error() string {
	if e.Column == "" {
		return "unique constraint violation"
	}
	return fmt.Sprintf("unique constraint violation on %s", e.Column)
}

// TranslateError maps driver-level unique violations to *ConflictError and
// returns every other error unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError

	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return &ConflictError{Column: conflictColumn(pgErr)}
	}

	return err
}

func conflictColumn(pgErr *pgconn.PgError) string {
	haystack := pgErr.ConstraintName + " " + pgErr.Detail

	for _, column := range []string{"sim_id", "team_name", "email"} {
		if strings.Contains(haystack, column) {
			return column
		}
	}

	return ""
}
