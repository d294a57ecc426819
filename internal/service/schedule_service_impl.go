package service

import (
	"context"
	"fmt"
	"time"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/repository"
	"github.com/andreseduardop/listy/internal/schedule"
	"github.com/google/uuid"
)

type scheduleService struct {
	lists repository.ListRepo
	items repository.ItemRepo
}

func NewScheduleService(lists repository.ListRepo, items repository.ItemRepo) ScheduleService {
	return &scheduleService{lists: lists, items: items}
}

func (s *scheduleService) AddTimedItem(ctx context.Context, listID, text string, at domain.Clock) (*domain.ScheduleItem, error) {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return nil, err
	}
	if !l.Kind.Timed() {
		return nil, fmt.Errorf("list %s is not a timed list", listID)
	}
	existing, err := s.items.ListTimed(ctx, listID)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	it := &domain.ScheduleItem{
		Item: domain.Item{
			ID:        uuid.New().String(),
			ListID:    listID,
			Position:  len(existing),
			Text:      text,
			CreatedAt: now,
			UpdatedAt: now,
		},
		Time: at,
	}
	if err := s.items.CreateTimed(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *scheduleService) TimedItems(ctx context.Context, listID string) ([]*domain.ScheduleItem, error) {
	return s.items.ListTimed(ctx, listID)
}

func (s *scheduleService) SetEndTime(ctx context.Context, listID string, end domain.Clock) error {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	l.EndTime = end
	l.EndSet = true
	l.UpdatedAt = time.Now().UTC()
	return s.lists.Update(ctx, l)
}

func (s *scheduleService) MoveTimedItem(ctx context.Context, listID, itemID string, toIndex int) error {
	l, err := s.lists.GetByID(ctx, listID)
	if err != nil {
		return err
	}
	current, err := s.items.ListTimed(ctx, listID)
	if err != nil {
		return err
	}

	entries := make([]schedule.Entry, len(current))
	byID := make(map[string]*domain.ScheduleItem, len(current))
	for i, it := range current {
		entries[i] = schedule.Entry{ID: it.ID, Time: it.Time}
		byID[it.ID] = it
	}

	endBefore := l.EndTime
	if !l.EndSet {
		// A schedule without a terminal time gets one synthesized from
		// its last row; never fatal, it is regenerated from current data.
		endBefore = schedule.SynthesizeEnd(entries)
	}

	after, endAfter := schedule.Reflow(entries, endBefore, itemID, toIndex)

	next := make([]*domain.ScheduleItem, len(after))
	for i, e := range after {
		it := byID[e.ID]
		it.Time = e.Time
		next[i] = it
	}
	if err := s.items.SaveSchedule(ctx, listID, next); err != nil {
		return err
	}

	l.EndTime = endAfter
	l.EndSet = true
	l.UpdatedAt = time.Now().UTC()
	return s.lists.Update(ctx, l)
}
