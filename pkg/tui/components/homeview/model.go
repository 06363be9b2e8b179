package homeview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/theme"
)

type item struct {
	title string
	desc  string
	open  func(events.ComponentID) tea.Cmd
}

// Model renders the landing screen with the top-level destinations.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	items  []item
	cursor int
	width  int
	height int
}

// NewModel constructs the landing screen.
func NewModel() *Model {
	return &Model{
		id:    events.ComponentID("home"),
		theme: theme.Default(),
		items: []item{
			{
				title: "Search",
				desc:  "Find dishes across every menu",
				open:  events.OpenSearchCmd,
			},
			{
				title: "Library",
				desc:  "Browse restaurants and average prices",
				open:  events.OpenLibraryCmd,
			},
			{
				title: "Upload",
				desc:  "Add a PDF menu for a restaurant",
				open:  events.OpenUploadCmd,
			},
		},
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			return m, m.items[m.cursor].open(m.id)
		}
	}
	return m, nil
}

// SetSize configures the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Selected reports the title of the highlighted destination.
func (m *Model) Selected() string {
	return m.items[m.cursor].title
}

// View renders the landing screen.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("Good Stuff"))
	b.WriteString("\n")
	b.WriteString(m.theme.Screen.Subtitle.Render("All the good stuff, in one place."))
	b.WriteString("\n\n")
	for i, it := range m.items {
		indicator := "  "
		title := it.title
		if i == m.cursor {
			indicator = m.theme.List.Cursor.Render("➤ ")
			title = m.theme.List.Selected.Render(title)
		}
		b.WriteString(indicator + title + "\n")
		b.WriteString("    " + m.theme.List.Faint.Render(it.desc) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Screen.Help.Render("↑/↓ move • enter open • q quit"))
	return b.String()
}
