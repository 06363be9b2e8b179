// Package app hosts the root Bubble Tea model: a stack of screens that
// navigate between each other through events.
package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/homeview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/libraryview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/menuview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/restaurantview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/searchview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/uploadview"
)

// Service is the full API surface the UI needs. *client.Client satisfies it.
type Service interface {
	searchview.Searcher
	restaurantview.Loader
	menuview.Loader
	uploadview.Service
	AvgPrices(ctx context.Context, restaurantID int) (*menu.AvgPriceSummary, error)
}

type screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Model, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Options tune the initial screen. A non-zero RestaurantID or MenuVersionID
// opens that entity directly on top of the home screen.
type Options struct {
	RestaurantID  int
	MenuVersionID int
}

// Model is the root of the interactive UI.
type Model struct {
	svc  Service
	opts Options

	stack []screen

	debugLog io.Writer

	termWidth  int
	termHeight int
}

// New constructs the root model.
func New(svc Service, opts Options) *Model {
	return &Model{
		svc:   svc,
		opts:  opts,
		stack: []screen{homeview.NewModel()},
	}
}

// SetDebugWriter configures an optional writer for diagnostic output.
func (m *Model) SetDebugWriter(w io.Writer) {
	m.debugLog = w
}

func (m *Model) debugf(format string, args ...any) {
	if m.debugLog == nil {
		return
	}
	fmt.Fprintf(m.debugLog, format+"\n", args...)
}

func (m *Model) active() screen {
	return m.stack[len(m.stack)-1]
}

func (m *Model) push(s screen) tea.Cmd {
	s.SetSize(m.termWidth, m.termHeight)
	m.stack = append(m.stack, s)
	return s.Init()
}

func (m *Model) pop() {
	if len(m.stack) > 1 {
		m.stack = m.stack[:len(m.stack)-1]
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	cmd := m.active().Init()
	switch {
	case m.opts.MenuVersionID != 0:
		return tea.Batch(cmd, m.push(menuview.NewModel(m.svc, m.opts.MenuVersionID, nil)))
	case m.opts.RestaurantID != 0:
		return tea.Batch(cmd, m.push(restaurantview.NewModel(m.svc, m.opts.RestaurantID, nil)))
	}
	return cmd
}

// Update processes Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		for _, s := range m.stack {
			s.SetSize(msg.Width, msg.Height)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if _, home := m.active().(*homeview.Model); home {
				return m, tea.Quit
			}
		case "esc":
			if _, home := m.active().(*homeview.Model); home {
				return m, tea.Quit
			}
		}
	case events.OpenSearchMsg:
		m.debugf("nav open %s", msg.Describe())
		return m, m.push(searchview.NewModel(m.svc))
	case events.OpenLibraryMsg:
		m.debugf("nav open %s", msg.Describe())
		return m, m.push(libraryview.NewModel(m.svc))
	case events.OpenUploadMsg:
		m.debugf("nav open %s", msg.Describe())
		return m, m.push(uploadview.NewModel(m.svc))
	case events.OpenRestaurantMsg:
		m.debugf("nav open %s", msg.Describe())
		return m, m.push(restaurantview.NewModel(m.svc, msg.RestaurantID, msg.Restaurant))
	case events.OpenMenuVersionMsg:
		m.debugf("nav open %s", msg.Describe())
		return m, m.push(menuview.NewModel(m.svc, msg.MenuVersionID, msg.Restaurant))
	case events.BackMsg:
		m.debugf("nav %s", msg.Describe())
		m.pop()
		return m, nil
	}

	if _, ok := msg.(tea.KeyMsg); ok {
		_, cmd := m.active().Update(msg)
		return m, cmd
	}

	// Async results may land after the user has navigated past the screen
	// that requested them, so everything else is broadcast down the stack.
	var cmds []tea.Cmd
	for _, s := range m.stack {
		if _, cmd := s.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// View renders the active screen.
func (m *Model) View() string {
	return m.active().View()
}

// Run launches the interactive TUI program.
func Run(svc Service, opts Options) error {
	p := tea.NewProgram(New(svc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
