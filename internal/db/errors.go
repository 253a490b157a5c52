package db

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"stayscape/internal/domain"
)

// Driver error numbers we classify. Classification goes by number only,
// never by matching message text.
const (
	errBadNull        = 1048 // column cannot be null
	errNoDefault      = 1364 // field doesn't have a default value
	errTruncated      = 1265 // data truncated for column
	errIncorrectValue = 1366 // incorrect value for column
	errOutOfRange     = 1292 // truncated incorrect value
	errFKDelete       = 1451 // row is referenced by a child
	errFKInsert       = 1452 // referenced row does not exist
	errCheckViolated  = 3819 // check constraint violated
)

// Classify maps driver errors onto the domain taxonomy. Errors it does not
// recognize pass through untouched and end up as a generic 500.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var myerr *mysql.MySQLError
	if errors.As(err, &myerr) {
		switch myerr.Number {
		case errFKInsert, errFKDelete:
			return domain.ForeignKeyError{Err: err}
		case errBadNull, errNoDefault, errCheckViolated:
			return domain.ShapeError{Err: err}
		case errTruncated, errIncorrectValue, errOutOfRange:
			return domain.TypeError{Err: err}
		}
	}
	return err
}

// IsNoRows reports a zero-row QueryRow result; callers turn it into a
// resource-specific not-found, never a storage error.
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
