package searchview

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
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

type fakeSearcher struct {
	results map[string][]menu.SearchResult
	err     error
	queries []string
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]menu.SearchResult, error) {
	f.queries = append(f.queries, query)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[query], nil
}

func typeString(t *testing.T, m *Model, s string) {
	t.Helper()
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
}

func settle(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command to run the search")
	}
	m.Update(cmd())
}

func pressEnter(m *Model) tea.Cmd {
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestSubmitRendersResults(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]menu.SearchResult{
		"pasta": {{
			Name:     "Trattoria Nonna",
			Location: "Via Roma 1",
			Foods: []menu.FoodItem{
				{Name: "Carbonara", Price: 12.5, Ingredients: []string{"egg", "guanciale"}},
			},
		}},
	}}
	m := NewModel(searcher)
	m.Init()
	typeString(t, m, "pasta")

	settle(t, m, pressEnter(m))

	if got := len(m.Results()); got != 1 {
		t.Fatalf("expected 1 result, got %d", got)
	}
	if searcher.queries[0] != "pasta" {
		t.Fatalf("expected query %q, got %q", "pasta", searcher.queries[0])
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, "Trattoria Nonna") {
		t.Fatalf("expected result name in view, got:\n%s", view)
	}
	if strings.Contains(view, "Carbonara") {
		t.Fatalf("expected dishes hidden before expanding, got:\n%s", view)
	}
}

func TestExpandTogglesDishes(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]menu.SearchResult{
		"": {{
			Name:  "Cafe",
			Foods: []menu.FoodItem{{Name: "Scone", Price: 3}},
		}},
	}}
	m := NewModel(searcher)
	m.Init()
	settle(t, m, pressEnter(m))

	// Landing on results moves focus off the input, enter now expands.
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !m.Expanded(0) {
		t.Fatalf("expected first result expanded")
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, "Scone") || !strings.Contains(view, "3.00€") {
		t.Fatalf("expected expanded dish with price, got:\n%s", view)
	}

	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Expanded(0) {
		t.Fatalf("expected expansion toggled off")
	}
}

func TestEmptyQueryStillDispatches(t *testing.T) {
	searcher := &fakeSearcher{}
	m := NewModel(searcher)
	m.Init()
	settle(t, m, pressEnter(m))

	if len(searcher.queries) != 1 || searcher.queries[0] != "" {
		t.Fatalf("expected one empty query dispatched, got %v", searcher.queries)
	}
	view := stripANSIString(m.View())
	if !strings.Contains(view, "No results found") {
		t.Fatalf("expected empty state, got:\n%s", view)
	}
}

func TestSearchFailureReadsAsEmpty(t *testing.T) {
	searcher := &fakeSearcher{err: errors.New("boom")}
	m := NewModel(searcher)
	m.Init()
	settle(t, m, pressEnter(m))

	if m.Results() != nil {
		t.Fatalf("expected no results after failure")
	}
	view := stripANSIString(m.View())
	if strings.Contains(view, "boom") {
		t.Fatalf("expected failure hidden from view, got:\n%s", view)
	}
	if !strings.Contains(view, "No results found") {
		t.Fatalf("expected empty state after failure, got:\n%s", view)
	}
}

func TestStaleResultIsDropped(t *testing.T) {
	searcher := &fakeSearcher{results: map[string][]menu.SearchResult{
		"a": {{Name: "First"}},
		"b": {{Name: "Second"}},
	}}
	m := NewModel(searcher)
	m.Init()

	typeString(t, m, "a")
	first := pressEnter(m)

	m.Update(tea.KeyPressMsg{Code: tea.KeyBackspace})
	typeString(t, m, "b")
	second := pressEnter(m)

	m.Update(second())
	m.Update(first())

	results := m.Results()
	if len(results) != 1 || results[0].Name != "Second" {
		t.Fatalf("expected stale result dropped, got %+v", results)
	}
}

func TestEscEmitsBack(t *testing.T) {
	m := NewModel(&fakeSearcher{})
	m.Init()
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatalf("expected a back command")
	}
	if _, ok := cmd().(interface{ Describe() string }); !ok {
		t.Fatalf("expected a navigation event, got %T", cmd())
	}
}
