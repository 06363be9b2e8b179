package searchview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/goodstuffhq/goodstuff/pkg/fetch"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/theme"
)

// Searcher runs a free-text query against the menu service.
type Searcher interface {
	Search(ctx context.Context, query string) ([]menu.SearchResult, error)
}

type focusZone int

const (
	focusInput focusZone = iota
	focusResults
)

// Model renders the dish search screen.
type Model struct {
	id       events.ComponentID
	theme    theme.Theme
	searcher Searcher

	input    textinput.Model
	state    fetch.State[[]menu.SearchResult]
	expanded map[int]bool
	focus    focusZone
	cursor   int

	width  int
	height int
}

type resultsMsg struct {
	owner   *Model
	gen     uint64
	results []menu.SearchResult
	err     error
}

// NewModel constructs the search screen bound to the provided searcher.
func NewModel(searcher Searcher) *Model {
	input := textinput.New()
	input.Placeholder = "What are you craving?"
	input.Prompt = ""
	return &Model{
		id:       events.ComponentID("search"),
		theme:    theme.Default(),
		searcher: searcher,
		input:    input,
		expanded: map[int]bool{},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case resultsMsg:
		if msg.owner != m {
			return m, nil
		}
		m.state.Resolve(msg.gen, msg.results, msg.err)
		m.expanded = map[int]bool{}
		m.cursor = 0
		if len(m.Results()) > 0 {
			m.focus = focusResults
			m.input.Blur()
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" {
		return events.BackCmd(m.id)
	}
	if m.focus == focusInput {
		switch msg.String() {
		case "enter":
			return m.submit()
		case "tab", "down":
			if len(m.Results()) > 0 {
				m.focus = focusResults
				m.input.Blur()
				return nil
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}

	results := m.Results()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		} else {
			m.focus = focusInput
			return m.input.Focus()
		}
	case "down", "j":
		if m.cursor < len(results)-1 {
			m.cursor++
		}
	case "enter", " ", "space":
		m.expanded[m.cursor] = !m.expanded[m.cursor]
	case "tab", "/":
		m.focus = focusInput
		return m.input.Focus()
	}
	return nil
}

func (m *Model) submit() tea.Cmd {
	query := m.input.Value()
	gen := m.state.Begin()
	searcher := m.searcher
	return func() tea.Msg {
		results, err := searcher.Search(context.Background(), query)
		return resultsMsg{owner: m, gen: gen, results: results, err: err}
	}
}

// Results reports the result set from the last settled search. A failed
// search reads as an empty set so the screen degrades to its empty state.
func (m *Model) Results() []menu.SearchResult {
	if m.state.Phase() != fetch.Success {
		return nil
	}
	return m.state.Value()
}

// Expanded reports whether the result at idx is showing its dishes.
func (m *Model) Expanded(idx int) bool {
	return m.expanded[idx]
}

// SetSize configures the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	m.input.SetWidth(inputWidth)
}

// View renders the search screen.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("Search"))
	b.WriteString("\n\n")
	b.WriteString("  " + m.input.View())
	b.WriteString("\n\n")

	switch m.state.Phase() {
	case fetch.Idle:
		b.WriteString(m.theme.Screen.Help.Render("  Type a dish or ingredient and press enter."))
	case fetch.Loading:
		b.WriteString(m.theme.Status.Loading.Render("  Searching…"))
	case fetch.Error:
		b.WriteString(m.theme.Status.Empty.Render("  No results found :("))
	case fetch.Success:
		results := m.state.Value()
		if len(results) == 0 {
			b.WriteString(m.theme.Status.Empty.Render("  No results found :("))
			break
		}
		for i, r := range results {
			b.WriteString(m.renderResult(i, r))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Screen.Help.Render("enter expand • tab input • esc back"))
	return b.String()
}

func (m *Model) renderResult(idx int, r menu.SearchResult) string {
	indicator := "  "
	name := m.theme.List.Name.Render(r.Name)
	if m.focus == focusResults && idx == m.cursor {
		indicator = m.theme.List.Cursor.Render("➤ ")
	}
	line := fmt.Sprintf("%s%s  %s\n", indicator, name, m.theme.List.Faint.Render(r.Location))
	if !m.expanded[idx] {
		return line
	}
	var b strings.Builder
	b.WriteString(line)
	for _, food := range r.Foods {
		b.WriteString("     " + food.Name)
		if price := menu.FormatPrice(food.Price); price != "" {
			b.WriteString("  " + m.theme.List.Price.Render(price))
		}
		b.WriteString("\n")
		if food.Description != "" {
			desc := wordwrap.String(food.Description, m.wrapWidth())
			for _, l := range strings.Split(desc, "\n") {
				b.WriteString("       " + m.theme.List.Faint.Render(l) + "\n")
			}
		}
		if len(food.Ingredients) > 0 {
			b.WriteString("       " + m.theme.List.Ingredients.Render(strings.Join(food.Ingredients, ", ")) + "\n")
		}
	}
	return b.String()
}

func (m *Model) wrapWidth() int {
	w := m.width - 10
	if w < 20 {
		w = 60
	}
	return w
}
