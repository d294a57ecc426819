// Package reorder implements the drag-and-drop list reordering engine:
// insertion index computation from pointer position, the per-list drag
// state machine, the splice-and-insert reorder operation, and routing of
// drops that land outside every tracked list.
package reorder

// ItemRect is the vertical extent of one trackable list row, as reported
// by the renderer. Rows are given in list order.
type ItemRect struct {
	ID     string
	Top    float64
	Height float64
}

// Midpoint returns the vertical center of the row.
func (r ItemRect) Midpoint() float64 {
	return r.Top + r.Height/2
}

// InsertionIndex computes where a dragged row would land for the given
// pointer Y coordinate: the index of the first row whose midpoint lies
// below the pointer, or len(rects) to append. A pointer exactly on a
// midpoint counts as before that row. An empty slice yields 0.
func InsertionIndex(rects []ItemRect, pointerY float64) int {
	for i, r := range rects {
		if r.Midpoint() >= pointerY {
			return i
		}
	}
	return len(rects)
}
