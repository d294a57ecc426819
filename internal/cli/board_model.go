package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/reorder"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// boardList is one list plus its loaded rows, in order.
type boardList struct {
	list  *domain.List
	items []*domain.ScheduleItem // Time is zero for untimed kinds

	session *reorder.Session

	// top is the absolute screen line of the first item row, refreshed on
	// every layout pass. The engine reads geometry through it.
	top int
}

// boardLoadedMsg carries freshly loaded board data.
type boardLoadedMsg struct {
	lists []*boardList
	err   error
}

// moveDoneMsg signals that a reorder was persisted and the board should reload.
type moveDoneMsg struct{ err error }

// moveRequest is the drop outcome captured from a session callback.
type moveRequest struct {
	listID  string
	timed   bool
	itemID  string
	toIndex int
}

// boardModel is the interactive board: every list stacked on one vertical
// axis, rows draggable with the mouse. It is the renderer side of the
// reorder engine: it owns geometry and forwards pointer events.
type boardModel struct {
	app *App

	lists  []*boardList
	router *reorder.EdgeRouter

	cursorList int
	cursorRow  int

	pending   *moveRequest
	form      *huh.Form
	formFor   string // list id the open add-item form belongs to
	formTimed bool
	newText   string
	newTime   string

	width  int
	height int
	err    error
}

func newBoardModel(app *App) *boardModel {
	return &boardModel{app: app, router: reorder.NewEdgeRouter()}
}

func (m *boardModel) Init() tea.Cmd {
	return m.loadBoard()
}

func (m *boardModel) loadBoard() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		lists, err := app.Lists.Lists(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}
		var out []*boardList
		for _, l := range lists {
			items, err := app.Schedules.TimedItems(ctx, l.ID)
			if err != nil {
				return boardLoadedMsg{err: err}
			}
			out = append(out, &boardList{list: l, items: items})
		}
		return boardLoadedMsg{lists: out}
	}
}

// attachSessions builds one drag session per list and registers each with
// the edge router. Sessions read live geometry from the layout.
func (m *boardModel) attachSessions() {
	m.router = reorder.NewEdgeRouter()
	for _, bl := range m.lists {
		bl := bl
		cfg := reorder.Config{
			IgnoreRow:        func(id string) bool { return !strings.HasPrefix(id, "item:") },
			AllowGlobalEdges: true,
		}
		bl.session = reorder.NewSession(cfg,
			func() []reorder.ItemRect { return m.rectsFor(bl) },
			func(draggedID string, toIndex int) {
				m.pending = &moveRequest{
					listID:  bl.list.ID,
					timed:   bl.list.Kind.Timed(),
					itemID:  strings.TrimPrefix(draggedID, "item:"),
					toIndex: toIndex,
				}
			},
		)
		m.router.Attach(bl.session,
			func() reorder.Bounds { return m.boundsFor(bl) },
			func() int { return len(bl.items) },
		)
	}
}

// rectsFor returns the trackable row rects of a list: one cell-high rows
// at their absolute screen lines. END and placeholder rows are not
// trackable and are excluded.
func (m *boardModel) rectsFor(bl *boardList) []reorder.ItemRect {
	rects := make([]reorder.ItemRect, len(bl.items))
	for i, it := range bl.items {
		rects[i] = reorder.ItemRect{
			ID:     "item:" + it.ID,
			Top:    float64(bl.top + i),
			Height: 1,
		}
	}
	return rects
}

// boundsFor returns the full vertical extent of a list block, including
// its END and placeholder rows.
func (m *boardModel) boundsFor(bl *boardList) reorder.Bounds {
	return reorder.Bounds{
		Top:    float64(bl.top - 1), // title line
		Bottom: float64(bl.top + m.blockRows(bl) - 2),
	}
}

// blockRows is how many screen lines a list block occupies, title included.
func (m *boardModel) blockRows(bl *boardList) int {
	rows := 1 + len(bl.items) + 1 // title + items + placeholder
	if bl.list.Kind == domain.KindSchedule {
		rows++ // END row
	}
	return rows
}

// relayout recomputes every list's top line. Blocks are stacked with one
// blank line between them, below a two-line header.
func (m *boardModel) relayout() {
	top := 2
	for _, bl := range m.lists {
		bl.top = top + 1 // first item row sits under the title line
		top += m.blockRows(bl) + 1
	}
}

// rowAt maps an absolute screen line to a row id, or "" when the line is
// not a row. Special rows get prefixed ids the sessions ignore.
func (m *boardModel) rowAt(y int) (listIdx int, rowID string) {
	for li, bl := range m.lists {
		rel := y - bl.top
		if rel < 0 || rel >= m.blockRows(bl)-1 {
			continue
		}
		switch {
		case rel < len(bl.items):
			return li, "item:" + bl.items[rel].ID
		case bl.list.Kind == domain.KindSchedule && rel == len(bl.items):
			return li, "end:" + bl.list.ID
		default:
			return li, "new:" + bl.list.ID
		}
	}
	return -1, ""
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.lists = msg.lists
		m.attachSessions()
		m.relayout()
		m.clampCursor()
		return m, nil

	case moveDoneMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.loadBoard()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m *boardModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	y := float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if li, rowID := m.rowAt(msg.Y); li >= 0 {
			m.lists[li].session.Begin(rowID)
		}

	case tea.MouseActionMotion:
		if bl := m.draggingList(); bl != nil {
			_, rowID := m.rowAt(msg.Y)
			bl.session.Hover(y, rowID)
		}

	case tea.MouseActionRelease:
		bl := m.draggingList()
		if bl == nil {
			return m, nil
		}
		if m.boundsFor(bl).Contains(y) {
			bl.session.Drop(y)
		} else if !m.router.RouteDrop(y) {
			// Outside the owning list but inside a sibling: no cross-list
			// drag, so the gesture is abandoned.
			bl.session.Cancel()
		}
		return m, m.flushPending()
	}
	return m, nil
}

func (m *boardModel) draggingList() *boardList {
	for _, bl := range m.lists {
		if bl.session != nil && bl.session.Dragging() {
			return bl
		}
	}
	return nil
}

// flushPending turns a captured drop outcome into the persisting command.
func (m *boardModel) flushPending() tea.Cmd {
	if m.pending == nil {
		return nil
	}
	req := *m.pending
	m.pending = nil
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if req.timed {
			err = app.Schedules.MoveTimedItem(ctx, req.listID, req.itemID, req.toIndex)
		} else {
			err = app.Lists.MoveItem(ctx, req.listID, req.itemID, req.toIndex)
		}
		return moveDoneMsg{err: err}
	}
}

func (m *boardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, boardKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, boardKeys.Cancel):
		if bl := m.draggingList(); bl != nil {
			bl.session.Cancel()
			return m, nil
		}
		return m, tea.Quit

	case key.Matches(msg, boardKeys.Down):
		m.moveCursor(1)

	case key.Matches(msg, boardKeys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, boardKeys.NextList):
		if len(m.lists) > 0 {
			m.cursorList = (m.cursorList + 1) % len(m.lists)
			m.cursorRow = 0
		}

	case key.Matches(msg, boardKeys.ShiftDown):
		return m, m.moveSelected(2) // insertion slot after the next row

	case key.Matches(msg, boardKeys.ShiftUp):
		return m, m.moveSelected(-1)

	case key.Matches(msg, boardKeys.Toggle):
		if it := m.selectedItem(); it != nil && !m.selectedList().list.Kind.Timed() {
			app := m.app
			id := it.ID
			return m, func() tea.Msg {
				return moveDoneMsg{err: app.Lists.ToggleDone(context.Background(), id)}
			}
		}

	case key.Matches(msg, boardKeys.Add):
		if bl := m.selectedList(); bl != nil {
			m.openAddForm(bl)
			return m, m.form.Init()
		}

	case key.Matches(msg, boardKeys.Delete):
		if it := m.selectedItem(); it != nil {
			app := m.app
			id := it.ID
			return m, func() tea.Msg {
				return moveDoneMsg{err: app.Lists.RemoveItem(context.Background(), id)}
			}
		}

	case key.Matches(msg, boardKeys.Refresh):
		return m, m.loadBoard()
	}
	return m, nil
}

// moveSelected reorders the selected row relative to the cursor via the
// same engine the mouse path uses. delta is the insertion slot offset
// from the current row index.
func (m *boardModel) moveSelected(delta int) tea.Cmd {
	bl := m.selectedList()
	it := m.selectedItem()
	if bl == nil || it == nil {
		return nil
	}
	m.pending = &moveRequest{
		listID:  bl.list.ID,
		timed:   bl.list.Kind.Timed(),
		itemID:  it.ID,
		toIndex: m.cursorRow + delta,
	}
	if delta > 0 && m.cursorRow < len(bl.items)-1 {
		m.cursorRow++
	} else if delta < 0 && m.cursorRow > 0 {
		m.cursorRow--
	}
	return m.flushPending()
}

func (m *boardModel) selectedList() *boardList {
	if m.cursorList < 0 || m.cursorList >= len(m.lists) {
		return nil
	}
	return m.lists[m.cursorList]
}

func (m *boardModel) selectedItem() *domain.ScheduleItem {
	bl := m.selectedList()
	if bl == nil || m.cursorRow < 0 || m.cursorRow >= len(bl.items) {
		return nil
	}
	return bl.items[m.cursorRow]
}

func (m *boardModel) moveCursor(delta int) {
	bl := m.selectedList()
	if bl == nil {
		return
	}
	m.cursorRow += delta
	m.clampCursor()
}

func (m *boardModel) clampCursor() {
	if len(m.lists) == 0 {
		m.cursorList, m.cursorRow = 0, 0
		return
	}
	if m.cursorList >= len(m.lists) {
		m.cursorList = len(m.lists) - 1
	}
	bl := m.lists[m.cursorList]
	if m.cursorRow >= len(bl.items) {
		m.cursorRow = len(bl.items) - 1
	}
	if m.cursorRow < 0 {
		m.cursorRow = 0
	}
}

// ── add-item form ────────────────────────────────────────────────────────────

func (m *boardModel) openAddForm(bl *boardList) {
	m.newText = ""
	m.newTime = ""
	m.formFor = bl.list.ID
	m.formTimed = bl.list.Kind.Timed()

	fields := []huh.Field{
		huh.NewInput().
			Title(fmt.Sprintf("New item in %q", bl.list.Title)).
			Value(&m.newText),
	}
	if m.formTimed {
		fields = append(fields, huh.NewInput().
			Title("Start time").
			Placeholder("09:00").
			Value(&m.newTime).
			Validate(func(s string) error {
				_, err := domain.ParseClock(s)
				return err
			}))
	}
	m.form = huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}

func (m *boardModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		text := strings.TrimSpace(m.newText)
		listID := m.formFor
		timed := m.formTimed
		timeStr := strings.TrimSpace(m.newTime)
		m.form = nil
		if text == "" {
			return m, nil
		}
		app := m.app
		if timed {
			at, err := domain.ParseClock(timeStr)
			if err != nil {
				m.err = err
				return m, nil
			}
			return m, func() tea.Msg {
				_, err := app.Schedules.AddTimedItem(context.Background(), listID, text, at)
				return moveDoneMsg{err: err}
			}
		}
		return m, func() tea.Msg {
			_, err := app.Lists.AddItem(context.Background(), listID, text)
			return moveDoneMsg{err: err}
		}
	}
	return m, cmd
}
