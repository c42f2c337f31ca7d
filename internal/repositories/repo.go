package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"
	"travelapp/internal/domain"
)

func dbOr(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

var errNoDB = errors.New("db tidak tersedia")

// notFoundOr maps sql.ErrNoRows to a NotFoundError for resource.
func notFoundOr(resource string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return err
}

// requireAffected turns a zero-row write into a NotFoundError.
func requireAffected(resource string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func boolToTiny(b bool) int {
	if b {
		return 1
	}
	return 0
}

// duplicateAs converts a unique-key violation into a ConflictError.
func duplicateAs(resource, msg string, err error) error {
	if intdb.IsDuplicateKey(err) {
		return domain.ConflictError{Resource: resource, Msg: msg, Err: err}
	}
	return err
}
