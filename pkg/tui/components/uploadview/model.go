package uploadview

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/goodstuffhq/goodstuff/pkg/fetch"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/theme"
	"github.com/goodstuffhq/goodstuff/pkg/upload"
)

// Service is the slice of the API client the upload screen needs.
type Service interface {
	ListRestaurants(ctx context.Context) ([]menu.Restaurant, error)
	upload.Service
}

type focusField int

const (
	fieldFile focusField = iota
	fieldMode
	fieldSearch
	fieldName
	fieldLocation
	fieldSchedule
	fieldURL
	fieldCuisine
	fieldSubmit
)

// Model renders the menu upload form. The menu attaches either to an
// existing restaurant picked by name or to one created on the spot.
type Model struct {
	id    events.ComponentID
	theme theme.Theme
	svc   Service

	restaurants fetch.State[[]menu.Restaurant]
	submitState fetch.State[int]

	focus    focusField
	existing bool

	fileInput   textinput.Model
	searchInput textinput.Model
	newInputs   map[focusField]*textinput.Model

	suggestions     []menu.Restaurant
	suggestionIndex int

	errorMsg string
	doneName string

	width  int
	height int
}

type restaurantsMsg struct {
	owner *Model
	gen   uint64
	list  []menu.Restaurant
	err   error
}

type uploadedMsg struct {
	owner *Model
	gen   uint64
	id    int
	name  string
	err   error
}

func newInput(placeholder string) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	return input
}

// NewModel constructs the upload screen bound to the provided service.
func NewModel(svc Service) *Model {
	m := &Model{
		id:          events.ComponentID("upload"),
		theme:       theme.Default(),
		svc:         svc,
		existing:    true,
		fileInput:   newInput("path/to/menu.pdf"),
		searchInput: newInput("Restaurant name…"),
	}
	name := newInput("Name")
	location := newInput("Location")
	schedule := newInput("09:00-17:00")
	url := newInput("https://…")
	cuisine := newInput("Cuisine")
	m.newInputs = map[focusField]*textinput.Model{
		fieldName:     &name,
		fieldLocation: &location,
		fieldSchedule: &schedule,
		fieldURL:      &url,
		fieldCuisine:  &cuisine,
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.fileInput.Focus(), m.loadRestaurants())
}

func (m *Model) loadRestaurants() tea.Cmd {
	gen := m.restaurants.Begin()
	svc := m.svc
	return func() tea.Msg {
		list, err := svc.ListRestaurants(context.Background())
		return restaurantsMsg{owner: m, gen: gen, list: list, err: err}
	}
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case restaurantsMsg:
		if msg.owner != m {
			return m, nil
		}
		m.restaurants.Resolve(msg.gen, msg.list, msg.err)
		m.refreshSuggestions()
	case uploadedMsg:
		if msg.owner != m {
			return m, nil
		}
		m.submitState.Resolve(msg.gen, msg.id, msg.err)
		if msg.err != nil {
			m.errorMsg = msg.err.Error()
		} else {
			m.errorMsg = ""
			m.doneName = msg.name
			return m, m.loadRestaurants()
		}
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		return events.BackCmd(m.id)
	case "tab", "down":
		if m.focus == fieldSearch && len(m.suggestions) > 0 && msg.String() == "down" {
			m.suggestionIndex = clampIndex(m.suggestionIndex+1, len(m.suggestions))
			return nil
		}
		return m.advanceFocus(1)
	case "shift+tab", "up":
		if m.focus == fieldSearch && len(m.suggestions) > 0 && msg.String() == "up" {
			m.suggestionIndex = clampIndex(m.suggestionIndex-1, len(m.suggestions))
			return nil
		}
		return m.advanceFocus(-1)
	case "left", "right", " ", "space":
		if m.focus == fieldMode {
			m.setExisting(!m.existing)
			return nil
		}
	case "enter":
		switch m.focus {
		case fieldSubmit:
			return m.submit()
		case fieldSearch:
			if len(m.suggestions) > 0 {
				pick := m.suggestions[m.suggestionIndex]
				m.searchInput.SetValue(pick.Name)
				m.searchInput.CursorEnd()
				m.suggestions = nil
				return nil
			}
			return m.advanceFocus(1)
		case fieldMode:
			m.setExisting(!m.existing)
			return nil
		default:
			return m.advanceFocus(1)
		}
	case "ctrl+s":
		return m.submit()
	}

	if input := m.focusedInput(); input != nil {
		var cmd tea.Cmd
		*input, cmd = input.Update(msg)
		if m.focus == fieldSearch {
			m.refreshSuggestions()
		}
		return cmd
	}
	return nil
}

func (m *Model) setExisting(existing bool) {
	m.existing = existing
	m.suggestions = nil
	m.errorMsg = ""
}

func (m *Model) focusSequence() []focusField {
	if m.existing {
		return []focusField{fieldFile, fieldMode, fieldSearch, fieldSubmit}
	}
	return []focusField{
		fieldFile, fieldMode,
		fieldName, fieldLocation, fieldSchedule, fieldURL, fieldCuisine,
		fieldSubmit,
	}
}

func (m *Model) advanceFocus(delta int) tea.Cmd {
	seq := m.focusSequence()
	current := 0
	for i, f := range seq {
		if f == m.focus {
			current = i
			break
		}
	}
	m.focus = seq[(current+len(seq)+delta)%len(seq)]
	m.suggestionIndex = 0
	if m.focus != fieldSearch {
		m.suggestions = nil
	} else {
		m.refreshSuggestions()
	}
	return m.updateInputFocus()
}

func (m *Model) focusedInput() *textinput.Model {
	switch m.focus {
	case fieldFile:
		return &m.fileInput
	case fieldSearch:
		return &m.searchInput
	default:
		return m.newInputs[m.focus]
	}
}

func (m *Model) updateInputFocus() tea.Cmd {
	m.fileInput.Blur()
	m.searchInput.Blur()
	for _, input := range m.newInputs {
		input.Blur()
	}
	if input := m.focusedInput(); input != nil {
		return input.Focus()
	}
	return nil
}

func (m *Model) refreshSuggestions() {
	if !m.existing || m.focus != fieldSearch {
		m.suggestions = nil
		return
	}
	query := m.searchInput.Value()
	known := m.knownRestaurants()
	if r, ok := menu.FindByName(known, query); ok && r.Name == query {
		m.suggestions = nil
		return
	}
	m.suggestions = menu.Suggest(known, query)
	m.suggestionIndex = clampIndex(m.suggestionIndex, len(m.suggestions))
}

func (m *Model) knownRestaurants() []menu.Restaurant {
	if m.restaurants.Phase() != fetch.Success {
		return nil
	}
	return m.restaurants.Value()
}

func (m *Model) submit() tea.Cmd {
	if m.submitState.Phase() == fetch.Loading {
		return nil
	}
	m.doneName = ""
	path := strings.TrimSpace(m.fileInput.Value())
	if path == "" {
		m.errorMsg = "a menu PDF is required"
		return nil
	}

	req := upload.Request{Filename: path}
	name := ""
	if m.existing {
		r, ok := menu.FindByName(m.knownRestaurants(), strings.TrimSpace(m.searchInput.Value()))
		if !ok {
			m.errorMsg = "pick a restaurant from the suggestions"
			return nil
		}
		req.RestaurantID = r.ID
		name = r.Name
	} else {
		nr := menu.NewRestaurant{
			Name:     strings.TrimSpace(m.newInputs[fieldName].Value()),
			Location: strings.TrimSpace(m.newInputs[fieldLocation].Value()),
			Schedule: strings.TrimSpace(m.newInputs[fieldSchedule].Value()),
			URL:      strings.TrimSpace(m.newInputs[fieldURL].Value()),
			Cuisine:  strings.TrimSpace(m.newInputs[fieldCuisine].Value()),
		}
		if missing := nr.Validate(); missing != "" {
			m.errorMsg = fmt.Sprintf("missing required field %q", missing)
			return nil
		}
		req.NewRestaurant = &nr
		name = nr.Name
	}

	m.errorMsg = ""
	gen := m.submitState.Begin()
	svc := m.svc
	return func() tea.Msg {
		file, err := os.Open(path)
		if err != nil {
			return uploadedMsg{owner: m, gen: gen, err: err}
		}
		defer file.Close()
		req.File = file
		id, err := upload.Run(context.Background(), svc, req)
		return uploadedMsg{owner: m, gen: gen, id: id, name: name, err: err}
	}
}

// SetSize configures the screen dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	inputWidth := width - 20
	if inputWidth < 24 {
		inputWidth = 24
	}
	m.fileInput.SetWidth(inputWidth)
	m.searchInput.SetWidth(inputWidth)
	for _, input := range m.newInputs {
		input.SetWidth(inputWidth)
	}
}

// Existing reports whether the form targets an existing restaurant.
func (m *Model) Existing() bool {
	return m.existing
}

// Suggestions reports the currently offered restaurant names.
func (m *Model) Suggestions() []menu.Restaurant {
	return m.suggestions
}

// View renders the upload form.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Screen.Title.Render("Upload Menu"))
	b.WriteString("\n\n")

	b.WriteString(m.renderRow(fieldFile, "Menu PDF:", m.fileInput.View()))

	mode := "existing restaurant"
	if !m.existing {
		mode = "new restaurant"
	}
	b.WriteString(m.renderRow(fieldMode, "Attach to:", "["+mode+"]"))

	if m.existing {
		b.WriteString(m.renderRow(fieldSearch, "Restaurant:", m.searchInput.View()))
		for i, s := range m.suggestions {
			indicator := "    "
			label := s.Name
			if i == m.suggestionIndex {
				indicator = "  " + m.theme.List.Cursor.Render("➤ ")
				label = m.theme.List.Selected.Render(label)
			}
			b.WriteString(indicator + label + "  " + m.theme.List.Faint.Render(s.Location) + "\n")
		}
	} else {
		b.WriteString(m.renderRow(fieldName, "Name:", m.newInputs[fieldName].View()))
		b.WriteString(m.renderRow(fieldLocation, "Location:", m.newInputs[fieldLocation].View()))
		b.WriteString(m.renderRow(fieldSchedule, "Schedule:", m.newInputs[fieldSchedule].View()))
		b.WriteString(m.renderRow(fieldURL, "URL:", m.newInputs[fieldURL].View()))
		b.WriteString(m.renderRow(fieldCuisine, "Cuisine:", m.newInputs[fieldCuisine].View()))
	}

	b.WriteString("\n")
	b.WriteString(m.renderRow(fieldSubmit, "", m.theme.List.Selected.Render("[ Upload ]")))
	b.WriteString("\n")
	b.WriteString(m.renderStatusLine())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Screen.Help.Render("tab next field • enter submit • esc back"))
	return b.String()
}

func (m *Model) renderRow(field focusField, label, value string) string {
	indicator := "  "
	if m.focus == field {
		indicator = m.theme.List.Cursor.Render("➤ ")
	}
	if label == "" {
		return indicator + value + "\n"
	}
	return fmt.Sprintf("%s%-12s %s\n", indicator, label, value)
}

func (m *Model) renderStatusLine() string {
	switch {
	case m.errorMsg != "":
		return m.theme.Status.Error.Render(m.errorMsg)
	case m.submitState.Phase() == fetch.Loading:
		return m.theme.Status.Loading.Render("Uploading…")
	case m.doneName != "":
		return m.theme.Status.Success.Render(fmt.Sprintf("Menu uploaded to %s.", m.doneName))
	default:
		return ""
	}
}

func clampIndex(value, length int) int {
	if length <= 0 {
		return 0
	}
	if value < 0 {
		return 0
	}
	if value >= length {
		return length - 1
	}
	return value
}
