package db

import (
	"errors"

	e "github.com/gartstein/hrms/internal/hrms/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// integrityViolationClass is the PostgreSQL SQLSTATE class of integrity
// constraint violations.
const integrityViolationClass = "23"

// translateError maps store errors onto the domain taxonomy. Unique and
// foreign-key failures arrive already translated by GORM; other integrity
// failures (NOT NULL, CHECK) are recognised per driver. Errors that are not
// integrity failures are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return e.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return e.ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return e.ErrConstraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && len(pgErr.Code) >= 2 && pgErr.Code[:2] == integrityViolationClass {
		return e.ErrConstraint
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return e.ErrConstraint
	}
	return err
}
