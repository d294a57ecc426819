// Package schedule implements the time reflow that follows a reorder of a
// timed list: every item keeps the forward duration it had to its old
// successor, and new start times are propagated from a fixed anchor.
package schedule

import (
	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/reorder"
)

// DefaultSlotMin is the duration assumed for the last item when a
// schedule has no terminal time and one must be synthesized.
const DefaultSlotMin = 30

// Entry is one schedule row as the reflow sees it: an id and a start time.
type Entry struct {
	ID   string
	Time domain.Clock
}

// Reflow reorders a timed list and recomputes every start time so that
// per-item durations, not clock times, are preserved.
//
// Durations are captured once against the old order: each item's duration
// is the forward (wrap-at-24h) distance from its own time to its
// successor's, where the successor of the last item is endBefore. The new
// order comes from the same splice rules as any other list. The first
// slot of the new order always starts at the old first item's time; the
// anchor does not change even when the dragged item was the old first
// item. Times propagate forward by the durations, which travel with
// their ids. The returned end time is the last new item's time plus its
// own duration.
//
// Fewer than two entries is a no-op: there is nothing to reorder.
func Reflow(before []Entry, endBefore domain.Clock, draggedID string, toIndex int) ([]Entry, domain.Clock) {
	if len(before) < 2 {
		return copyEntries(before), endBefore
	}

	durations := captureDurations(before, endBefore)

	ids := make([]string, len(before))
	for i, e := range before {
		ids[i] = e.ID
	}
	newIDs := reorder.Reorder(ids, draggedID, toIndex)

	anchor := before[0].Time
	after := make([]Entry, len(newIDs))
	t := anchor
	for i, id := range newIDs {
		after[i] = Entry{ID: id, Time: t}
		t = t.Add(durations[id])
	}
	return after, t
}

// captureDurations maps each id to the forward minutes from its time to
// the next entry's time under the given order, closing with end.
func captureDurations(entries []Entry, end domain.Clock) map[string]int {
	durations := make(map[string]int, len(entries))
	for i, e := range entries {
		next := end
		if i+1 < len(entries) {
			next = entries[i+1].Time
		}
		durations[e.ID] = e.Time.DurationTo(next)
	}
	return durations
}

// SynthesizeEnd derives a terminal time for a schedule that is missing
// one: the last entry's time plus a default slot. An empty schedule gets
// midnight. The terminal time can always be regenerated from current
// data, so a missing one is never fatal.
func SynthesizeEnd(entries []Entry) domain.Clock {
	if len(entries) == 0 {
		return domain.NewClock(0, 0)
	}
	return entries[len(entries)-1].Time.Add(DefaultSlotMin)
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}
