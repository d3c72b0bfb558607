// Package sqlite stores the task collection in a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"task-tracker/internal/domain"
	apperrors "task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store keeps the collection in the tasks table, one row per task.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (or creates) the database at dbPath and runs migrations
func New(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, apperrors.NewIOError("open", dbPath, err)
	}

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, apperrors.NewIOError("migrate", dbPath, err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns every task in collection order
func (s *Store) Load(ctx context.Context) ([]domain.Task, error) {
	query := `
	SELECT position, id, name, description, status, created_at, updated_at
	FROM tasks
	ORDER BY position ASC`

	rows, err := queryMultiple(ctx, s.db, s.path, query, scanTaskRows)
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		task, err := row.toDomain()
		if err != nil {
			return nil, apperrors.NewParseError(s.path, fmt.Errorf("row %d: %w", row.Position, err))
		}
		tasks = append(tasks, task)
	}

	logging.Debug("loaded tasks", "path", s.path, "count", len(tasks))
	return tasks, nil
}

// Save replaces the table contents with tasks in a single transaction
func (s *Store) Save(ctx context.Context, tasks []domain.Task) error {
	insert := `
	INSERT INTO tasks (position, id, name, description, status, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	err := withTx(ctx, s.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, insert)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, task := range tasks {
			row := toRow(i, task)
			if _, err := stmt.ExecContext(ctx, row.Position, row.ID, row.Name, row.Description, row.Status, row.CreatedAt, row.UpdatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return handleDatabaseError("write", s.path, err)
	}

	logging.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}
