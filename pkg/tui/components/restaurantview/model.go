package restaurantview

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/goodstuffhq/goodstuff/pkg/fetch"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/theme"
)

// Loader fetches a restaurant with its menu version history.
type Loader interface {
	RestaurantMenus(ctx context.Context, restaurantID int) (*menu.RestaurantDetail, error)
}

// Model renders a single restaurant and its menu versions. When navigation
// hands off the already-fetched restaurant record it is rendered immediately
// while the version history loads; direct opens fetch everything by id.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	loader Loader

	restaurantID int
	seed         *menu.Restaurant
	state        fetch.State[*menu.RestaurantDetail]
	cursor       int
	now          func() time.Time

	width  int
	height int
}

type loadedMsg struct {
	owner  *Model
	gen    uint64
	detail *menu.RestaurantDetail
	err    error
}

// NewModel constructs the restaurant screen. seed may be nil.
func NewModel(loader Loader, restaurantID int, seed *menu.Restaurant) *Model {
	return &Model{
		id:           events.ComponentID("restaurant"),
		theme:        theme.Default(),
		loader:       loader,
		restaurantID: restaurantID,
		seed:         seed,
		now:          time.Now,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	gen := m.state.Begin()
	loader := m.loader
	id := m.restaurantID
	return func() tea.Msg {
		detail, err := loader.RestaurantMenus(context.Background(), id)
		return loadedMsg{owner: m, gen: gen, detail: detail, err: err}
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
		m.state.Resolve(msg.gen, msg.detail, msg.err)
		m.cursor = 0
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	versions := m.Versions()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(versions)-1 {
			m.cursor++
		}
	case "enter":
		if m.cursor < len(versions) {
			return events.OpenMenuVersionCmd(m.id, versions[m.cursor].ID, m.Detail())
		}
	case "r":
		return m.load()
	case "esc":
		return events.BackCmd(m.id)
	}
	return nil
}

// Detail reports the settled restaurant detail, nil while loading or failed.
func (m *Model) Detail() *menu.RestaurantDetail {
	if m.state.Phase() != fetch.Success {
		return nil
	}
	return m.state.Value()
}

// Versions reports the settled menu version history, newest first.
func (m *Model) Versions() []menu.MenuVersion {
	if d := m.Detail(); d != nil {
		return d.MenuVersions
	}
	return nil
}

// SetSize configures the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the restaurant screen.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.state.Phase() {
	case fetch.Idle, fetch.Loading:
		b.WriteString(m.theme.Status.Loading.Render("  Loading menus…"))
	case fetch.Error:
		b.WriteString(m.theme.Status.Empty.Render("  no data available"))
	case fetch.Success:
		versions := m.state.Value().MenuVersions
		if len(versions) == 0 {
			b.WriteString(m.theme.Status.Empty.Render("  No versions found :("))
			break
		}
		for i, v := range versions {
			b.WriteString(m.renderVersion(i, v, len(versions)))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Screen.Help.Render("enter open menu • r reload • esc back"))
	return b.String()
}

func (m *Model) renderHeader() string {
	name := ""
	var info *menu.Restaurant
	if d := m.Detail(); d != nil {
		name = d.DisplayName()
		info = &d.Restaurant
	} else if m.seed != nil {
		name = m.seed.Name
		info = m.seed
	}
	if name == "" {
		name = fmt.Sprintf("Restaurant %d", m.restaurantID)
	}

	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render(name))
	b.WriteString("\n")
	if info != nil {
		if menu.IsOpen(info.Schedule, m.now()) {
			b.WriteString(m.theme.Status.Open.Render("Currently Open"))
		} else {
			b.WriteString(m.theme.Status.Closed.Render("Currently Closed"))
		}
		b.WriteString("\n")
		detail := strings.TrimSpace(info.Location + "  " + info.Schedule)
		if detail != "" {
			b.WriteString(m.theme.List.Faint.Render(detail) + "\n")
		}
		if info.URL != "" {
			b.WriteString(m.theme.List.Faint.Render(info.URL) + "\n")
		}
	}
	return b.String()
}

func (m *Model) renderVersion(idx int, v menu.MenuVersion, total int) string {
	indicator := "  "
	if idx == m.cursor {
		indicator = m.theme.List.Cursor.Render("➤ ")
	}
	label := fmt.Sprintf("Version %d", total-idx)
	if idx == 0 {
		label += " " + m.theme.Status.Success.Render("(latest)")
	}
	return fmt.Sprintf("%s%s  %s\n", indicator, label,
		m.theme.List.Faint.Render(menu.ShortDate(v.CreationDate)))
}
