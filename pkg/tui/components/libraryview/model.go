package libraryview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/goodstuffhq/goodstuff/pkg/fetch"
	"github.com/goodstuffhq/goodstuff/pkg/library"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/theme"
)

// Model renders the restaurant library with aggregated prices.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	source library.PriceSource

	state  fetch.State[[]library.Entry]
	cursor int

	width  int
	height int
}

type loadedMsg struct {
	owner   *Model
	gen     uint64
	entries []library.Entry
	err     error
}

// NewModel constructs the library screen bound to the provided source.
func NewModel(source library.PriceSource) *Model {
	return &Model{
		id:     events.ComponentID("library"),
		theme:  theme.Default(),
		source: source,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	gen := m.state.Begin()
	source := m.source
	return func() tea.Msg {
		entries, err := library.Aggregate(context.Background(), source)
		return loadedMsg{owner: m, gen: gen, entries: entries, err: err}
	}
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case loadedMsg:
		if msg.owner != m {
			return m, nil
		}
		m.state.Resolve(msg.gen, msg.entries, msg.err)
		if m.cursor >= len(m.Entries()) {
			m.cursor = 0
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	entries := m.Entries()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(entries)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(entries) {
			e := entries[m.cursor]
			r := e.Restaurant
			return events.OpenRestaurantCmd(m.id, r.ID, &r)
		}
	case "r":
		return m.load()
	case "esc":
		return events.BackCmd(m.id)
	}
	return nil
}

// Entries reports the settled library rows, empty when loading or failed.
func (m *Model) Entries() []library.Entry {
	if m.state.Phase() != fetch.Success {
		return nil
	}
	return m.state.Value()
}

// SetSize configures the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the library screen.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("Library"))
	b.WriteString("\n\n")

	switch m.state.Phase() {
	case fetch.Idle, fetch.Loading:
		b.WriteString(m.theme.Status.Loading.Render("  Loading restaurants…"))
	case fetch.Error:
		b.WriteString(m.theme.Status.Empty.Render("  No restaurants yet."))
	case fetch.Success:
		entries := m.state.Value()
		if len(entries) == 0 {
			b.WriteString(m.theme.Status.Empty.Render("  No restaurants yet."))
			break
		}
		for i, e := range entries {
			b.WriteString(m.renderEntry(i, e))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Screen.Help.Render("enter open • r reload • esc back"))
	return b.String()
}

func (m *Model) renderEntry(idx int, e library.Entry) string {
	indicator := "  "
	name := m.theme.List.Name.Render(e.Restaurant.Name)
	if idx == m.cursor {
		indicator = m.theme.List.Cursor.Render("➤ ")
	}
	prices := fmt.Sprintf("%s  (%s to %s)",
		m.theme.List.Price.Render(menu.FormatDollar(e.Prices.AvgValue())),
		menu.FormatDollar(e.Prices.MinValue()),
		menu.FormatDollar(e.Prices.MaxValue()))
	var b strings.Builder
	fmt.Fprintf(&b, "%s%s  %s\n", indicator, name, prices)
	fmt.Fprintf(&b, "     %s\n", m.theme.List.Faint.Render(
		strings.TrimSpace(e.Restaurant.Location+"  "+e.Restaurant.Schedule)))
	return b.String()
}
