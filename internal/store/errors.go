package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"campusevents/internal/domain"
)

// Postgres error codes the services care about.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Translate maps native Postgres constraint errors onto the domain taxonomy.
// conflictMsg is used for unique violations, fkMsg for foreign key
// violations; anything else passes through untouched.
func Translate(err error, conflictMsg, fkMsg string) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return domain.Conflict("%s", conflictMsg)
		case codeForeignKeyViolation:
			return domain.ForeignKey("%s", fkMsg)
		}
	}
	return err
}
