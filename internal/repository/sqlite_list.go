package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
)

// SQLiteListRepo implements ListRepo using a SQLite database.
type SQLiteListRepo struct {
	db *sql.DB
}

// NewSQLiteListRepo creates a new SQLiteListRepo.
func NewSQLiteListRepo(db *sql.DB) *SQLiteListRepo {
	return &SQLiteListRepo{db: db}
}

func (r *SQLiteListRepo) Create(ctx context.Context, l *domain.List) error {
	query := `INSERT INTO lists (id, kind, title, end_time_min, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		l.ID,
		string(l.Kind),
		l.Title,
		endTimeValue(l),
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting list: %w", err)
	}
	return nil
}

func (r *SQLiteListRepo) GetByID(ctx context.Context, id string) (*domain.List, error) {
	query := `SELECT id, kind, title, end_time_min, created_at, updated_at
		FROM lists WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanList(row)
}

func (r *SQLiteListRepo) List(ctx context.Context) ([]*domain.List, error) {
	query := `SELECT id, kind, title, end_time_min, created_at, updated_at
		FROM lists ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}
	defer rows.Close()

	var lists []*domain.List
	for rows.Next() {
		var l domain.List
		var kind string
		var endMin sql.NullInt64
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&l.ID, &kind, &l.Title, &endMin, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("scanning list: %w", err)
		}
		populateList(&l, kind, endMin, createdAtStr, updatedAtStr)
		lists = append(lists, &l)
	}
	return lists, rows.Err()
}

func (r *SQLiteListRepo) Update(ctx context.Context, l *domain.List) error {
	query := `UPDATE lists SET title = ?, end_time_min = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		l.Title,
		endTimeValue(l),
		l.UpdatedAt.Format(time.RFC3339),
		l.ID,
	)
	if err != nil {
		return fmt.Errorf("updating list: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("list %s: %w", l.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteListRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM lists WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting list: %w", err)
	}
	return nil
}

func (r *SQLiteListRepo) scanList(row *sql.Row) (*domain.List, error) {
	var l domain.List
	var kind string
	var endMin sql.NullInt64
	var createdAtStr, updatedAtStr string

	err := row.Scan(&l.ID, &kind, &l.Title, &endMin, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("list: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning list: %w", err)
	}

	populateList(&l, kind, endMin, createdAtStr, updatedAtStr)
	return &l, nil
}

func populateList(l *domain.List, kind string, endMin sql.NullInt64, createdAt, updatedAt string) {
	l.Kind = domain.ListKind(kind)
	if endMin.Valid {
		l.EndTime = domain.Clock(endMin.Int64)
		l.EndSet = true
	}
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	l.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
}

// endTimeValue maps an unset terminal time to NULL so that a deliberate
// midnight end stays distinguishable from no end at all.
func endTimeValue(l *domain.List) any {
	if !l.EndSet {
		return nil
	}
	return int(l.EndTime)
}
