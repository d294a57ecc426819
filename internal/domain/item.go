package domain

import "time"

// List is an ordered collection of items. Order is meaningful and is the
// sole carrier of position; item ids are unique within one list.
type List struct {
	ID    string
	Kind  ListKind
	Title string

	// EndTime is the terminal sentinel time for schedule lists. It bounds
	// the duration of the last real item and is never reordered. EndSet
	// distinguishes a deliberate midnight end from a schedule whose end
	// was never set.
	EndTime Clock
	EndSet  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item is a row in a plain (untimed) list. The payload fields are
// irrelevant to reordering; only ID and position matter there.
type Item struct {
	ID       string
	ListID   string
	Position int
	Text     string
	Done     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScheduleItem is a row in a timed list: an Item plus a start-of-day time.
type ScheduleItem struct {
	Item
	Time Clock
}
