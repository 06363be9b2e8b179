package menuview

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/goodstuffhq/goodstuff/pkg/fetch"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/theme"
)

// Loader fetches a single menu version with its dishes.
type Loader interface {
	MenuVersion(ctx context.Context, menuVersionID int) (*menu.MenuVersionDetail, error)
}

// Model renders one menu version. restaurant carries the surrounding
// restaurant context when the screen was reached from the version list; it
// is nil on direct opens and the header is simply omitted.
type Model struct {
	id     events.ComponentID
	theme  theme.Theme
	loader Loader

	versionID  int
	restaurant *menu.RestaurantDetail
	state      fetch.State[*menu.MenuVersionDetail]

	width  int
	height int
}

type loadedMsg struct {
	owner  *Model
	gen    uint64
	detail *menu.MenuVersionDetail
	err    error
}

// NewModel constructs the menu screen. restaurant may be nil.
func NewModel(loader Loader, versionID int, restaurant *menu.RestaurantDetail) *Model {
	return &Model{
		id:         events.ComponentID("menu"),
		theme:      theme.Default(),
		loader:     loader,
		versionID:  versionID,
		restaurant: restaurant,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.load()
}

func (m *Model) load() tea.Cmd {
	gen := m.state.Begin()
	loader := m.loader
	id := m.versionID
	return func() tea.Msg {
		detail, err := loader.MenuVersion(context.Background(), id)
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
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.load()
		case "esc":
			return m, events.BackCmd(m.id)
		}
	}
	return m, nil
}

// Detail reports the settled menu version, nil while loading or failed.
func (m *Model) Detail() *menu.MenuVersionDetail {
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

// View renders the menu screen.
func (m *Model) View() string {
	var b strings.Builder
	if m.restaurant != nil {
		b.WriteString(m.theme.Screen.Title.Render(m.restaurant.DisplayName()))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Screen.Subtitle.Render("Menu"))
	b.WriteString("\n")

	switch m.state.Phase() {
	case fetch.Idle, fetch.Loading:
		b.WriteString(m.theme.Status.Loading.Render("  Loading menu…"))
	case fetch.Error:
		b.WriteString(m.theme.Status.Empty.Render("  no data available"))
	case fetch.Success:
		b.WriteString(m.renderMenu(m.state.Value()))
	}

	b.WriteString("\n\n")
	b.WriteString(m.theme.Screen.Help.Render("r reload • esc back"))
	return b.String()
}

func (m *Model) renderMenu(detail *menu.MenuVersionDetail) string {
	var b strings.Builder
	b.WriteString(m.theme.List.Faint.Render(
		"Last Updated: " + menu.FormatCreationDate(detail.MenuVersion.CreationDate)))
	b.WriteString("\n\n")
	if len(detail.FoodItems) == 0 {
		b.WriteString(m.theme.Status.Empty.Render("  Sorry - couldn't find data info here :("))
		return b.String()
	}
	// Dishes render newest-first.
	for i := len(detail.FoodItems) - 1; i >= 0; i-- {
		food := detail.FoodItems[i]
		b.WriteString("  " + m.theme.List.Name.Render(food.Name))
		if price := menu.FormatPrice(food.Price); price != "" {
			b.WriteString("  " + m.theme.List.Price.Render(price))
		}
		b.WriteString("\n")
		if food.Description != "" {
			for _, l := range strings.Split(wordwrap.String(food.Description, m.wrapWidth()), "\n") {
				b.WriteString("    " + m.theme.List.Faint.Render(l) + "\n")
			}
		}
		if len(food.Ingredients) > 0 {
			b.WriteString("    " + m.theme.List.Ingredients.Render(strings.Join(food.Ingredients, ", ")) + "\n")
		}
	}
	return b.String()
}

func (m *Model) wrapWidth() int {
	w := m.width - 8
	if w < 20 {
		w = 60
	}
	return w
}
