package persistent

import (
	"errors"

	"socialnet/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// invalidTextRepresentation is raised by postgres when an id is not a uuid.
const invalidTextRepresentation = "22P02"

// translate converts gorm sentinel errors into tagged application errors.
// Anything else is returned untouched and surfaces as an internal error.
func translate(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errs.Errorf(errs.ENOTFOUND, "%s not found", resource)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.Errorf(errs.ECONFLICT, "%s already exists", resource)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.Errorf(errs.ENOTFOUND, "%s references a missing record", resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return errs.Errorf(errs.ENOTFOUND, "%s not found", resource)
	}
	return err
}
