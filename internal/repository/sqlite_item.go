package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
)

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

const itemColumns = `id, list_id, position, text, done, time_min, created_at, updated_at`

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.Item) error {
	return r.insert(ctx, it, 0)
}

func (r *SQLiteItemRepo) CreateTimed(ctx context.Context, it *domain.ScheduleItem) error {
	return r.insert(ctx, &it.Item, int(it.Time))
}

func (r *SQLiteItemRepo) insert(ctx context.Context, it *domain.Item, timeMin int) error {
	query := `INSERT INTO items (` + itemColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		it.ID,
		it.ListID,
		it.Position,
		it.Text,
		it.Done,
		timeMin,
		it.CreatedAt.Format(time.RFC3339),
		it.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	it, _, err := scanItemRow(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	return it, nil
}

func (r *SQLiteItemRepo) ListByList(ctx context.Context, listID string) ([]*domain.Item, error) {
	timed, err := r.ListTimed(ctx, listID)
	if err != nil {
		return nil, err
	}
	items := make([]*domain.Item, len(timed))
	for i, ti := range timed {
		item := ti.Item
		items[i] = &item
	}
	return items, nil
}

func (r *SQLiteItemRepo) ListTimed(ctx context.Context, listID string) ([]*domain.ScheduleItem, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE list_id = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, listID)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ScheduleItem
	for rows.Next() {
		it, timeMin, err := scanItemRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}
		items = append(items, &domain.ScheduleItem{Item: *it, Time: domain.Clock(timeMin)})
	}
	return items, rows.Err()
}

func (r *SQLiteItemRepo) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET text = ?, done = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		it.Text,
		it.Done,
		it.UpdatedAt.Format(time.RFC3339),
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("updating item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("item %s: %w", it.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM items WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) ReplaceOrder(ctx context.Context, listID string, ids []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting order rewrite: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for pos, id := range ids {
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET position = ?, updated_at = ? WHERE id = ? AND list_id = ?`,
			pos, now, id, listID,
		); err != nil {
			return fmt.Errorf("rewriting position of item %s: %w", id, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteItemRepo) SaveSchedule(ctx context.Context, listID string, items []*domain.ScheduleItem) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting schedule rewrite: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339)
	for pos, it := range items {
		if _, err := tx.ExecContext(ctx,
			`UPDATE items SET position = ?, time_min = ?, updated_at = ? WHERE id = ? AND list_id = ?`,
			pos, int(it.Time), now, it.ID, listID,
		); err != nil {
			return fmt.Errorf("rewriting schedule row %s: %w", it.ID, err)
		}
	}
	return tx.Commit()
}

// scanItemRow scans one item row via the given scan function, returning
// the item plus its raw time_min column.
func scanItemRow(scan func(dest ...any) error) (*domain.Item, int, error) {
	var it domain.Item
	var timeMin int
	var createdAtStr, updatedAtStr string

	err := scan(&it.ID, &it.ListID, &it.Position, &it.Text, &it.Done, &timeMin, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, 0, err
	}
	it.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	it.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return &it, timeMin, nil
}
