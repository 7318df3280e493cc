package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"capquote/internal/domain/entities"
	"capquote/internal/usecase/interfaces"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ThreadSQLRepository persists ConfigurationThread documents in SQLite or MySQL.
//
// The revision column carries the optimistic concurrency token; the payload
// column the JSON document.
type ThreadSQLRepository struct {
	db     *sql.DB
	driver string
}

var _ interfaces.IThreadRepository = (*ThreadSQLRepository)(nil)

func NewThreadSQLRepository(db *sql.DB, driver string) *ThreadSQLRepository {
	return &ThreadSQLRepository{db: db, driver: driver}
}

func (r *ThreadSQLRepository) Get(ctx context.Context, id string) (entities.ConfigurationThread, error) {
	var revision int64
	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT revision, payload FROM quote_threads WHERE id = ?`, id).Scan(&revision, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ConfigurationThread{}, nil
	}
	if err != nil {
		return entities.ConfigurationThread{}, fmt.Errorf("failed to load thread: %w", err)
	}
	return decodeThread(payload, revision)
}

func (r *ThreadSQLRepository) Save(ctx context.Context, t entities.ConfigurationThread) (entities.ConfigurationThread, error) {
	expected := t.Revision
	next, payload, err := encodeThread(t, time.Now().UTC())
	if err != nil {
		return entities.ConfigurationThread{}, err
	}

	var res sql.Result
	if expected == 0 {
		res, err = r.db.ExecContext(ctx,
			insertIgnore[r.driver]+` INTO quote_threads (id, revision, payload, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
			next.ID, next.Revision, payload, formatTime(next.CreatedAt), formatTime(next.UpdatedAt))
	} else {
		res, err = r.db.ExecContext(ctx,
			`UPDATE quote_threads SET revision = ?, payload = ?, updated_at = ? WHERE id = ? AND revision = ?`,
			next.Revision, payload, formatTime(next.UpdatedAt), next.ID, expected)
	}
	if err != nil {
		return entities.ConfigurationThread{}, fmt.Errorf("failed to save thread: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return entities.ConfigurationThread{}, err
	}
	if n == 0 {
		return entities.ConfigurationThread{}, interfaces.ErrRevisionConflict
	}
	return next, nil
}
