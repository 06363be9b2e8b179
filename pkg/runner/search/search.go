package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/printers"
)

type Search struct {
	Query           string
	ShowIngredients bool
	Client          *client.Client
}

func (s *Search) Do(ctx context.Context) error {
	if s.Client == nil {
		return errors.New("can not search, no client")
	}
	pp := printers.PrettyPrint{ShowIngredients: s.ShowIngredients}
	fmt.Println("")

	// An empty query still round-trips; the server owns that decision.
	results, err := s.Client.Search(ctx, s.Query)
	if err != nil {
		// Degrade to the neutral empty state, matching the screens.
		results = nil
	}

	pp.Title(fmt.Sprintf("Search %q", s.Query))
	pp.SearchResults(results...)
	return nil
}
