package reorder

// Bounds is the vertical extent of a tracked list container.
type Bounds struct {
	Top    float64
	Bottom float64
}

// Contains reports whether y falls inside the bounds.
func (b Bounds) Contains(y float64) bool {
	return y >= b.Top && y <= b.Bottom
}

type trackedList struct {
	session *Session
	bounds  func() Bounds
	length  func() int
}

// EdgeRouter maps drops that land outside every tracked list's bounding
// box onto "move to start" or "move to end" of the list that currently
// has an active drag. It replaces a document-level listener with an
// explicit registry: each attached list contributes its session plus
// live bounds and length snapshot functions.
type EdgeRouter struct {
	lists []trackedList
}

// NewEdgeRouter returns an empty router.
func NewEdgeRouter() *EdgeRouter {
	return &EdgeRouter{}
}

// Attach registers a list with the router. Sessions that do not allow
// global edges are accepted but never routed to.
func (r *EdgeRouter) Attach(s *Session, bounds func() Bounds, length func() int) {
	r.lists = append(r.lists, trackedList{session: s, bounds: bounds, length: length})
}

// RouteDrop handles a drop at the given vertical coordinate. It returns
// true when the drop was consumed: the point lies outside every tracked
// bounds, exactly one attached session is mid-drag and allows global
// edges, and the point is above or below that list. Above the list's top
// routes to index 0; below its bottom routes to index = current length.
// Drops inside any tracked bounds are left to the owning session. First
// matching list wins if bounds overlap.
func (r *EdgeRouter) RouteDrop(y float64) bool {
	for _, tl := range r.lists {
		if tl.bounds().Contains(y) {
			return false
		}
	}
	for _, tl := range r.lists {
		if !tl.session.Dragging() || !tl.session.AllowsGlobalEdges() {
			continue
		}
		b := tl.bounds()
		switch {
		case y < b.Top:
			tl.session.DropAt(0)
		default:
			tl.session.DropAt(tl.length())
		}
		return true
	}
	return false
}

// CancelAll aborts any in-progress drag on every attached list. Useful
// when the pointer leaves the viewport entirely.
func (r *EdgeRouter) CancelAll() {
	for _, tl := range r.lists {
		tl.session.Cancel()
	}
}
