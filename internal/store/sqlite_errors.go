package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isConstraintViolation reports whether err is a sqlite3 primary-key or
// unique constraint failure. Add relies on this to distinguish a
// duplicate id from any other backend failure.
// See https://www.sqlite.org/rescode.html for the full code list.
func isConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	if sqliteErr.Code != sqlite3.ErrConstraint {
		return false
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey,
		sqlite3.ErrConstraintUnique,
		sqlite3.ErrConstraintRowID:
		return true
	}

	return false
}
