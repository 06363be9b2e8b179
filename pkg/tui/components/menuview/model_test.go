package menuview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
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

type fakeLoader struct {
	detail *menu.MenuVersionDetail
	err    error
}

func (f *fakeLoader) MenuVersion(ctx context.Context, menuVersionID int) (*menu.MenuVersionDetail, error) {
	return f.detail, f.err
}

func TestDishesRenderNewestFirst(t *testing.T) {
	loader := &fakeLoader{detail: &menu.MenuVersionDetail{
		MenuVersion: menu.MenuVersion{ID: 9, CreationDate: "2026-02-14T08:30:00"},
		FoodItems: []menu.FoodItem{
			{Name: "Oldest", Price: 5},
			{Name: "Newest", Price: 7.5},
		},
	}}
	m := NewModel(loader, 9, nil)
	m.Update(m.Init()())

	view := stripANSIString(m.View())
	if !strings.Contains(view, "Last Updated: 14 February 2026") {
		t.Fatalf("expected long-form date, got:\n%s", view)
	}
	newest := strings.Index(view, "Newest")
	oldest := strings.Index(view, "Oldest")
	if newest == -1 || oldest == -1 || newest > oldest {
		t.Fatalf("expected newest dish first, got:\n%s", view)
	}
	if !strings.Contains(view, "7.50€") {
		t.Fatalf("expected formatted price, got:\n%s", view)
	}
}

func TestUnparseableDateRendersLiteral(t *testing.T) {
	loader := &fakeLoader{detail: &menu.MenuVersionDetail{
		MenuVersion: menu.MenuVersion{ID: 9, CreationDate: "not-a-date"},
		FoodItems:   []menu.FoodItem{{Name: "Soup", Price: 4}},
	}}
	m := NewModel(loader, 9, nil)
	m.Update(m.Init()())

	if !strings.Contains(stripANSIString(m.View()), "Invalid Date") {
		t.Fatalf("expected literal invalid date marker")
	}
}

func TestMissingPriceIsSuppressed(t *testing.T) {
	loader := &fakeLoader{detail: &menu.MenuVersionDetail{
		MenuVersion: menu.MenuVersion{ID: 9, CreationDate: "2026-02-14T08:30:00"},
		FoodItems:   []menu.FoodItem{{Name: "Mystery Dish", Price: 0}},
	}}
	m := NewModel(loader, 9, nil)
	m.Update(m.Init()())

	view := stripANSIString(m.View())
	if !strings.Contains(view, "Mystery Dish") {
		t.Fatalf("expected dish rendered, got:\n%s", view)
	}
	if strings.Contains(view, "€") {
		t.Fatalf("expected no currency for missing price, got:\n%s", view)
	}
}

func TestEmptyMenu(t *testing.T) {
	loader := &fakeLoader{detail: &menu.MenuVersionDetail{
		MenuVersion: menu.MenuVersion{ID: 9, CreationDate: "2026-02-14T08:30:00"},
	}}
	m := NewModel(loader, 9, nil)
	m.Update(m.Init()())

	if !strings.Contains(stripANSIString(m.View()), "couldn't find data info here") {
		t.Fatalf("expected empty menu state")
	}
}

func TestRestaurantContextHeader(t *testing.T) {
	loader := &fakeLoader{detail: &menu.MenuVersionDetail{
		MenuVersion: menu.MenuVersion{ID: 9, CreationDate: "2026-02-14T08:30:00"},
	}}
	ctxDetail := &menu.RestaurantDetail{Restaurant: menu.Restaurant{Name: "Bistro"}}
	m := NewModel(loader, 9, ctxDetail)
	m.Update(m.Init()())

	if !strings.Contains(stripANSIString(m.View()), "Bistro") {
		t.Fatalf("expected handed-off restaurant name in header")
	}

	bare := NewModel(loader, 9, nil)
	bare.Update(bare.Init()())
	if strings.Contains(stripANSIString(bare.View()), "Bistro") {
		t.Fatalf("expected no header without context")
	}
}

func TestFetchFailure(t *testing.T) {
	loader := &fakeLoader{err: errors.New("down")}
	m := NewModel(loader, 9, nil)
	m.Update(m.Init()())

	view := stripANSIString(m.View())
	if !strings.Contains(view, "no data available") {
		t.Fatalf("expected neutral failure state, got:\n%s", view)
	}
}
