package app

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/homeview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/menuview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/restaurantview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/components/searchview"
	"github.com/goodstuffhq/goodstuff/pkg/tui/events"
)

func stripANSIString(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

type fakeService struct{}

func (fakeService) Search(ctx context.Context, query string) ([]menu.SearchResult, error) {
	return nil, nil
}

func (fakeService) ListRestaurants(ctx context.Context) ([]menu.Restaurant, error) {
	return nil, nil
}

func (fakeService) CreateRestaurant(ctx context.Context, r menu.NewRestaurant) (int, error) {
	return 1, nil
}

func (fakeService) AvgPrices(ctx context.Context, restaurantID int) (*menu.AvgPriceSummary, error) {
	return nil, nil
}

func (fakeService) RestaurantMenus(ctx context.Context, restaurantID int) (*menu.RestaurantDetail, error) {
	return &menu.RestaurantDetail{Restaurant: menu.Restaurant{ID: restaurantID, Name: "Bistro"}}, nil
}

func (fakeService) MenuVersion(ctx context.Context, menuVersionID int) (*menu.MenuVersionDetail, error) {
	return &menu.MenuVersionDetail{MenuVersion: menu.MenuVersion{ID: menuVersionID}}, nil
}

func (fakeService) UploadMenu(ctx context.Context, restaurantID int, filename string, file io.Reader) error {
	return nil
}

func TestStartsOnHome(t *testing.T) {
	m := New(fakeService{}, Options{})
	m.Init()
	if _, ok := m.active().(*homeview.Model); !ok {
		t.Fatalf("expected home screen, got %T", m.active())
	}
	if !strings.Contains(stripANSIString(m.View()), "Good Stuff") {
		t.Fatalf("expected home title in view")
	}
}

func TestHomeSelectionOpensSearch(t *testing.T) {
	m := New(fakeService{}, Options{})
	m.Init()

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a navigation command")
	}
	m.Update(cmd())

	if _, ok := m.active().(*searchview.Model); !ok {
		t.Fatalf("expected search screen, got %T", m.active())
	}
	if len(m.stack) != 2 {
		t.Fatalf("expected stack depth 2, got %d", len(m.stack))
	}
}

func TestBackPopsToPreviousScreen(t *testing.T) {
	m := New(fakeService{}, Options{})
	m.Init()
	m.Update(events.OpenLibraryMsg{})
	m.Update(events.OpenRestaurantMsg{RestaurantID: 7})

	if _, ok := m.active().(*restaurantview.Model); !ok {
		t.Fatalf("expected restaurant screen, got %T", m.active())
	}

	m.Update(events.BackMsg{})
	if len(m.stack) != 2 {
		t.Fatalf("expected restaurant popped, depth %d", len(m.stack))
	}
	m.Update(events.BackMsg{})
	if _, ok := m.active().(*homeview.Model); !ok {
		t.Fatalf("expected home after backing out, got %T", m.active())
	}
	m.Update(events.BackMsg{})
	if len(m.stack) != 1 {
		t.Fatalf("expected home to stay on the stack")
	}
}

func TestDeepLinkOpensRestaurant(t *testing.T) {
	m := New(fakeService{}, Options{RestaurantID: 7})
	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("expected init command for deep link")
	}
	if _, ok := m.active().(*restaurantview.Model); !ok {
		t.Fatalf("expected restaurant screen on start, got %T", m.active())
	}
}

func TestDeepLinkOpensMenuVersion(t *testing.T) {
	m := New(fakeService{}, Options{MenuVersionID: 3})
	m.Init()
	if _, ok := m.active().(*menuview.Model); !ok {
		t.Fatalf("expected menu screen on start, got %T", m.active())
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := New(fakeService{}, Options{})
	m.Init()
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
}

func TestWindowSizePropagates(t *testing.T) {
	m := New(fakeService{}, Options{})
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.termWidth != 120 || m.termHeight != 40 {
		t.Fatalf("expected stored terminal size, got %dx%d", m.termWidth, m.termHeight)
	}
}
