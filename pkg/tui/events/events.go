package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// OpenSearchMsg asks the root model to switch to the search screen.
type OpenSearchMsg struct {
	Component ComponentID
}

// Describe renders the navigation event for logs.
func (m OpenSearchMsg) Describe() string {
	return fmt.Sprintf(`component:%q target:"search"`, m.Component)
}

// OpenLibraryMsg asks the root model to switch to the library screen.
type OpenLibraryMsg struct {
	Component ComponentID
}

// Describe renders the navigation event for logs.
func (m OpenLibraryMsg) Describe() string {
	return fmt.Sprintf(`component:%q target:"library"`, m.Component)
}

// OpenUploadMsg asks the root model to switch to the upload screen.
type OpenUploadMsg struct {
	Component ComponentID
}

// Describe renders the navigation event for logs.
func (m OpenUploadMsg) Describe() string {
	return fmt.Sprintf(`component:%q target:"upload"`, m.Component)
}

// OpenRestaurantMsg asks the root model to open the detail screen for a
// restaurant. Restaurant carries the already-fetched record when the
// navigation originates from the library so the detail screen can render
// immediately; it is nil on direct opens.
type OpenRestaurantMsg struct {
	Component    ComponentID
	RestaurantID int
	Restaurant   *menu.Restaurant
}

// Describe renders the navigation event for logs.
func (m OpenRestaurantMsg) Describe() string {
	name := ""
	if m.Restaurant != nil {
		name = m.Restaurant.Name
	}
	return fmt.Sprintf(`component:%q restaurant:%d name:%q`, m.Component, m.RestaurantID, name)
}

// OpenMenuVersionMsg asks the root model to open a single menu version.
// Restaurant carries the surrounding restaurant detail when known.
type OpenMenuVersionMsg struct {
	Component     ComponentID
	MenuVersionID int
	Restaurant    *menu.RestaurantDetail
}

// Describe renders the navigation event for logs.
func (m OpenMenuVersionMsg) Describe() string {
	name := ""
	if m.Restaurant != nil {
		name = m.Restaurant.DisplayName()
	}
	return fmt.Sprintf(`component:%q version:%d restaurant:%q`, m.Component, m.MenuVersionID, name)
}

// BackMsg asks the root model to return to the previous screen.
type BackMsg struct {
	Component ComponentID
}

// Describe renders the navigation event for logs.
func (m BackMsg) Describe() string {
	return fmt.Sprintf(`component:%q target:"back"`, m.Component)
}

// OpenSearchCmd wraps OpenSearchMsg in a tea.Cmd.
func OpenSearchCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return OpenSearchMsg{Component: component}
	}
}

// OpenLibraryCmd wraps OpenLibraryMsg in a tea.Cmd.
func OpenLibraryCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return OpenLibraryMsg{Component: component}
	}
}

// OpenUploadCmd wraps OpenUploadMsg in a tea.Cmd.
func OpenUploadCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return OpenUploadMsg{Component: component}
	}
}

// OpenRestaurantCmd wraps OpenRestaurantMsg in a tea.Cmd.
func OpenRestaurantCmd(component ComponentID, id int, r *menu.Restaurant) tea.Cmd {
	return func() tea.Msg {
		return OpenRestaurantMsg{
			Component:    component,
			RestaurantID: id,
			Restaurant:   r,
		}
	}
}

// OpenMenuVersionCmd wraps OpenMenuVersionMsg in a tea.Cmd.
func OpenMenuVersionCmd(component ComponentID, id int, r *menu.RestaurantDetail) tea.Cmd {
	return func() tea.Msg {
		return OpenMenuVersionMsg{
			Component:     component,
			MenuVersionID: id,
			Restaurant:    r,
		}
	}
}

// BackCmd wraps BackMsg in a tea.Cmd.
func BackCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return BackMsg{Component: component}
	}
}
