package cli

import (
	"fmt"
	"strings"

	"github.com/andreseduardop/listy/internal/domain"
	"github.com/andreseduardop/listy/internal/reorder"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	boardHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	listTitleStyle   = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorRowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	draggedRowStyle  = lipgloss.NewStyle().Faint(true)
	guideMarkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	endRowStyle      = lipgloss.NewStyle().Faint(true)
	placeholderStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	errStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	helpStyle        = lipgloss.NewStyle().Faint(true)
)

type boardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextList  key.Binding
	ShiftUp   key.Binding
	ShiftDown key.Binding
	Toggle    key.Binding
	Add       key.Binding
	Delete    key.Binding
	Refresh   key.Binding
	Cancel    key.Binding
	Quit      key.Binding
}

var boardKeys = boardKeyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	NextList:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next list")),
	ShiftUp:   key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑", "move row up")),
	ShiftDown: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓", "move row down")),
	Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
	Delete:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel/quit")),
	Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (m *boardModel) View() string {
	if m.err != nil {
		return errStyle.Render(fmt.Sprintf("error: %v", m.err)) + "\n"
	}
	if m.form != nil {
		return m.form.View()
	}

	var b strings.Builder
	b.WriteString(boardHeaderStyle.Render("listy") + "\n\n")

	if len(m.lists) == 0 {
		b.WriteString(placeholderStyle.Render("no lists yet. create one with `listy list add`") + "\n")
		return b.String()
	}

	m.relayout()
	for li, bl := range m.lists {
		b.WriteString(listTitleStyle.Render(bl.list.Title) + "\n")
		for i, it := range bl.items {
			b.WriteString(m.renderRow(bl, li, i, it) + "\n")
		}
		if bl.list.Kind == domain.KindSchedule {
			b.WriteString(endRowStyle.Render(fmt.Sprintf("  %s  END", displayEndTime(bl.list, bl.items))) + "\n")
		}
		b.WriteString(placeholderStyle.Render("  + add item") + "\n")
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("drag rows with the mouse · shift+↑/↓ move · a add · q quit"))
	return b.String()
}

func (m *boardModel) renderRow(bl *boardList, listIdx, rowIdx int, it *domain.ScheduleItem) string {
	var text string
	if bl.list.Kind.Timed() {
		text = fmt.Sprintf("%s  %s", it.Time, it.Text)
	} else {
		mark := " "
		if it.Done {
			mark = "x"
		}
		text = fmt.Sprintf("[%s] %s", mark, it.Text)
	}

	prefix := "  "
	if listIdx == m.cursorList && rowIdx == m.cursorRow {
		prefix = "> "
		text = cursorRowStyle.Render(text)
	}

	if bl.session != nil {
		if bl.session.DraggedID() == "item:"+it.ID {
			text = draggedRowStyle.Render(text)
		}
		if g := bl.session.CurrentGuide(); g.ItemID == "item:"+it.ID {
			switch g.Edge {
			case reorder.EdgeBefore:
				prefix = guideMarkStyle.Render("▲ ")
			case reorder.EdgeAfter:
				prefix = guideMarkStyle.Render("▼ ")
			}
		}
	}

	return prefix + text
}
