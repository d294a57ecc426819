package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/reorder"
	"github.com/andreseduardop/listy/internal/repository"
	"github.com/google/uuid"
)

type listService struct {
	lists repository.ListRepo
	items repository.ItemRepo
}

func NewListService(lists repository.ListRepo, items repository.ItemRepo) ListService {
	return &listService{lists: lists, items: items}
}

func (s *listService) CreateList(ctx context.Context, kind domain.ListKind, title string) (*domain.List, error) {
	if !domain.ValidListKinds[string(kind)] {
		return nil, fmt.Errorf("unknown list kind %q", kind)
	}
	now := time.Now().UTC()
	l := &domain.List{
		ID:        uuid.New().String(),
		Kind:      kind,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.lists.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *listService) GetList(ctx context.Context, id string) (*domain.List, error) {
	return s.lists.GetByID(ctx, id)
}

func (s *listService) Lists(ctx context.Context) ([]*domain.List, error) {
	return s.lists.List(ctx)
}

func (s *listService) DeleteList(ctx context.Context, id string) error {
	return s.lists.Delete(ctx, id)
}

func (s *listService) AddItem(ctx context.Context, listID, text string) (*domain.Item, error) {
	existing, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	it := &domain.Item{
		ID:        uuid.New().String(),
		ListID:    listID,
		Position:  len(existing),
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.items.Create(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *listService) Items(ctx context.Context, listID string) ([]*domain.Item, error) {
	return s.items.ListByList(ctx, listID)
}

func (s *listService) UpdateText(ctx context.Context, itemID, text string) error {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	it.Text = text
	it.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, it)
}

func (s *listService) ToggleDone(ctx context.Context, itemID string) error {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	it.Done = !it.Done
	it.UpdatedAt = time.Now().UTC()
	return s.items.Update(ctx, it)
}

func (s *listService) RemoveItem(ctx context.Context, itemID string) error {
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if err := s.items.Delete(ctx, itemID); err != nil {
		return err
	}
	// Close the position gap so order stays dense.
	remaining, err := s.items.ListByList(ctx, it.ListID)
	if err != nil {
		return err
	}
	ids := make([]string, len(remaining))
	for i, r := range remaining {
		ids[i] = r.ID
	}
	return s.items.ReplaceOrder(ctx, it.ListID, ids)
}

func (s *listService) MoveItem(ctx context.Context, listID, itemID string, toIndex int) error {
	current, err := s.items.ListByList(ctx, listID)
	if err != nil {
		return err
	}
	ids := make([]string, len(current))
	for i, it := range current {
		ids[i] = it.ID
	}
	next := reorder.Reorder(ids, itemID, toIndex)
	return s.items.ReplaceOrder(ctx, listID, next)
}
