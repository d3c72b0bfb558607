package sqlite

import (
	"context"
	"database/sql"

	apperrors "task-tracker/internal/errors"
)

// handleDatabaseError converts database errors to structured app errors
func handleDatabaseError(operation string, path string, err error) error {
	return apperrors.NewIOError(operation, path, err)
}

// queryMultiple executes a query that returns multiple rows and scans them
func queryMultiple[T any](ctx context.Context, db *sql.DB, path string, query string, scanFunc func(Rows) ([]*T, error), args ...interface{}) ([]*T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, handleDatabaseError("query", path, err)
	}
	defer rows.Close()

	results, err := scanFunc(rows)
	if err != nil {
		return nil, handleDatabaseError("scan", path, err)
	}

	return results, nil
}

// withTx runs fn inside a transaction, rolling back on error
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
