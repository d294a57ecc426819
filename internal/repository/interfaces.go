package repository

import (
	"context"
	"errors"

	"github.com/andreseduardop/listy/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type ListRepo interface {
	Create(ctx context.Context, l *domain.List) error
	GetByID(ctx context.Context, id string) (*domain.List, error)
	List(ctx context.Context) ([]*domain.List, error)
	Update(ctx context.Context, l *domain.List) error
	Delete(ctx context.Context, id string) error
}

type ItemRepo interface {
	Create(ctx context.Context, it *domain.Item) error
	CreateTimed(ctx context.Context, it *domain.ScheduleItem) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListByList(ctx context.Context, listID string) ([]*domain.Item, error)
	ListTimed(ctx context.Context, listID string) ([]*domain.ScheduleItem, error)
	Update(ctx context.Context, it *domain.Item) error
	Delete(ctx context.Context, id string) error

	// ReplaceOrder rewrites the position column for a list so that the
	// stored order matches ids exactly. Runs in one transaction; ids not
	// present in the list are ignored by the update.
	ReplaceOrder(ctx context.Context, listID string, ids []string) error

	// SaveSchedule rewrites position and time for every given item of a
	// timed list in one transaction.
	SaveSchedule(ctx context.Context, listID string, items []*domain.ScheduleItem) error
}
