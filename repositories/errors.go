package repositories

import (
	"errors"
	"strings"

	"starwars-server/entities"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// translateWrite maps an insert failure onto the domain error kinds. A foreign
// key failure on insert means a referenced row is missing.
func translateWrite(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isDuplicate(err):
		return entities.UniquenessViolation(op, err)
	case isForeignKeyViolation(err):
		return &entities.Error{Kind: entities.KindNotFound, Op: op, Message: "referenced row does not exist", Err: err}
	default:
		return entities.Persistence(op, err)
	}
}

// translateDelete maps a delete failure; a foreign key failure means dependents exist.
func translateDelete(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isForeignKeyViolation(err):
		return &entities.Error{Kind: entities.KindReferenced, Op: op, Message: "row is still referenced", Err: err}
	default:
		return entities.Persistence(op, err)
	}
}

func translateRead(op, entity string, id uint, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return entities.NotFound(entity, id)
	default:
		return entities.Persistence(op, err)
	}
}
