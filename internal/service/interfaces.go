package service

import (
	"context"

	"github.com/andreseduardop/listy/internal/domain"
)

type ListService interface {
	CreateList(ctx context.Context, kind domain.ListKind, title string) (*domain.List, error)
	GetList(ctx context.Context, id string) (*domain.List, error)
	Lists(ctx context.Context) ([]*domain.List, error)
	DeleteList(ctx context.Context, id string) error

	AddItem(ctx context.Context, listID, text string) (*domain.Item, error)
	Items(ctx context.Context, listID string) ([]*domain.Item, error)
	UpdateText(ctx context.Context, itemID, text string) error
	ToggleDone(ctx context.Context, itemID string) error
	RemoveItem(ctx context.Context, itemID string) error

	// MoveItem reorders one row of a plain list to the given insertion
	// slot and persists the result. A stale item id is a silent no-op.
	MoveItem(ctx context.Context, listID, itemID string, toIndex int) error
}

type ScheduleService interface {
	AddTimedItem(ctx context.Context, listID, text string, at domain.Clock) (*domain.ScheduleItem, error)
	TimedItems(ctx context.Context, listID string) ([]*domain.ScheduleItem, error)
	SetEndTime(ctx context.Context, listID string, end domain.Clock) error

	// MoveTimedItem reorders one row of a timed list, reflows every start
	// time so per-item durations are preserved, and persists both the new
	// order and the new times, including the terminal end time.
	MoveTimedItem(ctx context.Context, listID, itemID string, toIndex int) error
}
