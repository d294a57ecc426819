package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/repository"
	"github.com/google/uuid"
)

// MakeList inserts a list of the given kind and returns it.
func MakeList(t *testing.T, database *sql.DB, kind domain.ListKind, title string) *domain.List {
	t.Helper()
	now := time.Now().UTC()
	l := &domain.List{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repository.NewSQLiteListRepo(database).Create(context.Background(), l); err != nil {
		t.Fatalf("failed to insert fixture list: %v", err)
	}
	return l
}

// MakeItem inserts an item at the given position and returns it.
func MakeItem(t *testing.T, database *sql.DB, listID, text string, position int) *domain.Item {
	t.Helper()
	now := time.Now().UTC()
	it := &domain.Item{
		ID:        uuid.New().String(),
		ListID:    listID,
		Position:  position,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repository.NewSQLiteItemRepo(database).Create(context.Background(), it); err != nil {
		t.Fatalf("failed to insert fixture item: %v", err)
	}
	return it
}

// MakeTimedItem inserts a timed item and returns it.
func MakeTimedItem(t *testing.T, database *sql.DB, listID, text string, position int, at domain.Clock) *domain.ScheduleItem {
	t.Helper()
	now := time.Now().UTC()
	it := &domain.ScheduleItem{
		Item: domain.Item{
			ID:        uuid.New().String(),
			ListID:    listID,
			Position:  position,
			Text:      text,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Time: at,
	}
	if err := repository.NewSQLiteItemRepo(database).CreateTimed(context.Background(), it); err != nil {
		t.Fatalf("failed to insert fixture timed item: %v", err)
	}
	return it
}
