package reorder

// Edge identifies which side of a hovered row the insertion guide sits on.
type Edge string

const (
	EdgeNone   Edge = ""
	EdgeBefore Edge = "before"
	EdgeAfter  Edge = "after"
)

// Guide is the advisory visual state published while a drag is in
// progress: which row is hovered and on which side the drop marker should
// render. It never gates the final index; Drop recomputes that from the
// live pointer position.
type Guide struct {
	ItemID string
	Edge   Edge
}

type sessionState int

const (
	stateIdle sessionState = iota
	stateDragging
)

// Config controls which rows a Session will pick up and whether the
// session participates in out-of-bounds drop routing.
type Config struct {
	// IgnoreRow reports rows that must never start a drag, such as a
	// trailing "add new entry" placeholder or a schedule's terminal row.
	IgnoreRow func(id string) bool

	// AllowGlobalEdges opts the session into EdgeRouter handling for
	// drops that land outside the list bounds.
	AllowGlobalEdges bool
}

// Session is the drag state machine for one list container. The renderer
// forwards raw pointer lifecycle events (begin, hover, drop, cancel) and
// supplies row geometry on demand; the session owns nothing but the
// transient drag state, which is discarded when the drag concludes.
type Session struct {
	cfg Config

	// Rects returns the current trackable rows in list order. It is
	// consulted fresh on every index computation so that the drop index
	// always reflects live geometry, not the state at drag start.
	rects func() []ItemRect

	// OnReorder is invoked exactly once per completed drop and never on
	// cancel.
	onReorder func(draggedID string, toIndex int)

	// OnGuide, if set, is notified whenever the advisory guide changes.
	OnGuide func(Guide)

	state     sessionState
	draggedID string
	guide     Guide
}

// NewSession builds a session over the given row snapshot function and
// drop callback.
func NewSession(cfg Config, rects func() []ItemRect, onReorder func(draggedID string, toIndex int)) *Session {
	return &Session{cfg: cfg, rects: rects, onReorder: onReorder}
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool { return s.state == stateDragging }

// DraggedID returns the id of the row being dragged, or "" when idle.
func (s *Session) DraggedID() string { return s.draggedID }

// CurrentGuide returns the advisory guide state.
func (s *Session) CurrentGuide() Guide { return s.guide }

// AllowsGlobalEdges reports whether out-of-bounds drops may be routed to
// this session.
func (s *Session) AllowsGlobalEdges() bool { return s.cfg.AllowGlobalEdges }

// Begin starts a drag on the given row. It is a no-op if a drag is
// already in progress (first drag wins, so a double-fired start event
// cannot wedge the machine) or if the row is excluded by config.
func (s *Session) Begin(itemID string) {
	if s.state != stateIdle {
		return
	}
	if s.cfg.IgnoreRow != nil && s.cfg.IgnoreRow(itemID) {
		return
	}
	s.state = stateDragging
	s.draggedID = itemID
}

// Hover updates the advisory guide for the given pointer position.
// overID names the row under the pointer, or "" when the pointer is over
// no trackable row. Valid only while dragging; otherwise a no-op.
func (s *Session) Hover(pointerY float64, overID string) {
	if s.state != stateDragging {
		return
	}
	if overID == "" || (s.cfg.IgnoreRow != nil && s.cfg.IgnoreRow(overID)) {
		s.setGuide(Guide{})
		return
	}
	for _, r := range s.rects() {
		if r.ID != overID {
			continue
		}
		edge := EdgeBefore
		if pointerY > r.Midpoint() {
			edge = EdgeAfter
		}
		s.setGuide(Guide{ItemID: overID, Edge: edge})
		return
	}
	s.setGuide(Guide{})
}

// Drop completes the drag at the given pointer position. The target index
// is recomputed from live row geometry, independent of any guide state,
// then handed to the reorder callback. The session returns to idle.
func (s *Session) Drop(pointerY float64) {
	if s.state != stateDragging {
		return
	}
	s.DropAt(InsertionIndex(s.rects(), pointerY))
}

// DropAt completes the drag at an explicit insertion index. Used by the
// EdgeRouter for drops outside the list bounds.
func (s *Session) DropAt(toIndex int) {
	if s.state != stateDragging {
		return
	}
	id := s.draggedID
	cb := s.onReorder
	s.reset()
	if cb != nil {
		cb(id, clamp(toIndex, 0, len(s.rects())))
	}
}

// Cancel aborts any in-progress drag and clears all guide state. Safe to
// call redundantly from any state.
func (s *Session) Cancel() {
	s.reset()
}

func (s *Session) reset() {
	s.state = stateIdle
	s.draggedID = ""
	s.setGuide(Guide{})
}

func (s *Session) setGuide(g Guide) {
	if s.guide == g {
		return
	}
	s.guide = g
	if s.OnGuide != nil {
		s.OnGuide(g)
	}
}
