// Package library assembles the restaurant library view: the full
// restaurant list joined with per-restaurant price summaries fetched
// concurrently.
package library

import (
	"context"

	"github.com/goodstuffhq/goodstuff/pkg/fetch"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

// PriceSource is the slice of the API client the aggregation needs.
type PriceSource interface {
	ListRestaurants(ctx context.Context) ([]menu.Restaurant, error)
	AvgPrices(ctx context.Context, restaurantID int) (*menu.AvgPriceSummary, error)
}

// Entry pairs a restaurant with its resolved price summary.
type Entry struct {
	Restaurant menu.Restaurant
	Prices     menu.AvgPriceSummary
}

// Aggregate lists all restaurants, fetches every price summary concurrently,
// zips the outcomes back by index, and keeps only restaurants whose summary
// resolved. A failed or absent summary silently drops that restaurant; the
// surviving entries keep the original list order. Only the initial listing
// can fail the whole operation.
func Aggregate(ctx context.Context, src PriceSource) ([]Entry, error) {
	restaurants, err := src.ListRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	if len(restaurants) == 0 {
		return nil, nil
	}

	outcomes := fetch.SettleAll(ctx, len(restaurants), func(ctx context.Context, i int) (*menu.AvgPriceSummary, error) {
		return src.AvgPrices(ctx, restaurants[i].ID)
	})

	entries := make([]Entry, 0, len(restaurants))
	for i, outcome := range outcomes {
		if !outcome.Ok() || outcome.Value == nil {
			continue
		}
		entries = append(entries, Entry{
			Restaurant: restaurants[i],
			Prices:     *outcome.Value,
		})
	}
	return entries, nil
}
