package reorder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionHarness struct {
	rects  []ItemRect
	drops  []drop
	guides []Guide
	sess   *Session
}

type drop struct {
	id      string
	toIndex int
}

func newHarness(cfg Config) *sessionHarness {
	h := &sessionHarness{rects: threeRects()}
	h.sess = NewSession(cfg, func() []ItemRect { return h.rects }, func(id string, toIndex int) {
		h.drops = append(h.drops, drop{id: id, toIndex: toIndex})
	})
	h.sess.OnGuide = func(g Guide) { h.guides = append(h.guides, g) }
	return h
}

func TestSession_BeginHoverDrop(t *testing.T) {
	h := newHarness(Config{})

	h.sess.Begin("b")
	assert.True(t, h.sess.Dragging())
	assert.Equal(t, "b", h.sess.DraggedID())

	// Below row c's midpoint: guide marks c/after.
	h.sess.Hover(210, "c")
	assert.Equal(t, Guide{ItemID: "c", Edge: EdgeAfter}, h.sess.CurrentGuide())

	h.sess.Drop(210)
	require.Len(t, h.drops, 1)
	assert.Equal(t, drop{id: "b", toIndex: 3}, h.drops[0])
	assert.False(t, h.sess.Dragging())
	assert.Equal(t, Guide{}, h.sess.CurrentGuide(), "guide must be cleared on drop")
}

func TestSession_HoverEdgeByMidpoint(t *testing.T) {
	h := newHarness(Config{})
	h.sess.Begin("a")

	h.sess.Hover(150, "b") // above b's midpoint (160)
	assert.Equal(t, Guide{ItemID: "b", Edge: EdgeBefore}, h.sess.CurrentGuide())

	h.sess.Hover(170, "b") // below b's midpoint
	assert.Equal(t, Guide{ItemID: "b", Edge: EdgeAfter}, h.sess.CurrentGuide())

	h.sess.Hover(170, "") // pointer over no trackable row
	assert.Equal(t, Guide{}, h.sess.CurrentGuide())
}

func TestSession_DropIgnoresStaleGuide(t *testing.T) {
	// The guide may be stale; the drop index always comes from the live
	// pointer position.
	h := newHarness(Config{})
	h.sess.Begin("c")
	h.sess.Hover(210, "c") // guide says after c
	h.sess.Drop(105)       // but the pointer is above a's midpoint

	require.Len(t, h.drops, 1)
	assert.Equal(t, drop{id: "c", toIndex: 0}, h.drops[0])
}

func TestSession_ReentrantBeginIgnored(t *testing.T) {
	h := newHarness(Config{})
	h.sess.Begin("a")
	h.sess.Begin("b") // double-fired start event: first drag wins
	assert.Equal(t, "a", h.sess.DraggedID())

	h.sess.Drop(10000)
	require.Len(t, h.drops, 1)
	assert.Equal(t, "a", h.drops[0].id)
}

func TestSession_IgnoredRowCannotStartDrag(t *testing.T) {
	h := newHarness(Config{IgnoreRow: func(id string) bool { return id == "c" }})
	h.sess.Begin("c")
	assert.False(t, h.sess.Dragging())

	// Hovering an ignored row clears the guide instead of marking it.
	h.sess.Begin("a")
	h.sess.Hover(190, "c")
	assert.Equal(t, Guide{}, h.sess.CurrentGuide())
}

func TestSession_CancelIdempotentFromAnyState(t *testing.T) {
	h := newHarness(Config{})
	h.sess.Cancel() // idle cancel is safe

	h.sess.Begin("a")
	h.sess.Hover(150, "b")
	h.sess.Cancel()
	assert.False(t, h.sess.Dragging())
	assert.Equal(t, Guide{}, h.sess.CurrentGuide())
	h.sess.Cancel()

	// No drop callback on cancel, ever.
	assert.Empty(t, h.drops)
}

func TestSession_HoverAndDropIgnoredWhileIdle(t *testing.T) {
	h := newHarness(Config{})
	h.sess.Hover(150, "b")
	h.sess.Drop(150)
	assert.Empty(t, h.drops)
	assert.Equal(t, Guide{}, h.sess.CurrentGuide())
}

func TestSession_DraggedRowRemovedMidDrag(t *testing.T) {
	// An external edit deletes the dragged row; the drop still fires with
	// the live index and the downstream reorder no-ops on the missing id.
	h := newHarness(Config{})
	h.sess.Begin("b")
	h.rects = []ItemRect{
		{ID: "a", Top: 100, Height: 40},
		{ID: "c", Top: 140, Height: 40},
	}
	h.sess.Drop(500)
	require.Len(t, h.drops, 1)
	assert.Equal(t, drop{id: "b", toIndex: 2}, h.drops[0])
	assert.False(t, h.sess.Dragging())
}

func TestSession_GuideChangeNotifications(t *testing.T) {
	h := newHarness(Config{})
	h.sess.Begin("a")
	h.sess.Hover(150, "b")
	h.sess.Hover(150, "b") // unchanged guide must not re-notify
	h.sess.Hover(170, "b")
	h.sess.Cancel()

	assert.Equal(t, []Guide{
		{ItemID: "b", Edge: EdgeBefore},
		{ItemID: "b", Edge: EdgeAfter},
		{},
	}, h.guides)
}
