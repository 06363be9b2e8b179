package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Screen ScreenTheme
	List   ListTheme
	Status StatusTheme
}

// ScreenTheme styles the chrome shared by every screen.
type ScreenTheme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Frame    lipgloss.Style
}

// ListTheme styles selectable rows and their details.
type ListTheme struct {
	Cursor      lipgloss.Style
	Selected    lipgloss.Style
	Name        lipgloss.Style
	Price       lipgloss.Style
	Faint       lipgloss.Style
	Ingredients lipgloss.Style
}

// StatusTheme styles transient state lines.
type StatusTheme struct {
	Loading lipgloss.Style
	Empty   lipgloss.Style
	Error   lipgloss.Style
	Open    lipgloss.Style
	Closed  lipgloss.Style
	Success lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Screen: ScreenTheme{
			Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
			Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
		},
		List: ListTheme{
			Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
			Selected:    lipgloss.NewStyle().Bold(true),
			Name:        lipgloss.NewStyle().Bold(true),
			Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Faint:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Ingredients: lipgloss.NewStyle().Foreground(lipgloss.Color("178")),
		},
		Status: StatusTheme{
			Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			Open:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
			Closed:  lipgloss.NewStyle().Foreground(lipgloss.Color("204")),
			Success: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		},
	}
}
