package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/goodstuffhq/goodstuff/pkg/runner/restaurant"
)

func addRestaurant(topLevel *cobra.Command) {
	var restaurantID int

	cmd := &cobra.Command{
		Use:   "restaurant <id>",
		Short: "Show a restaurant with its menu version history.",
		Example: `
goodstuff restaurant 12
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a restaurant id")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return errors.New("restaurant id must be a positive number")
			}
			restaurantID = id
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			r := restaurant.Restaurant{
				RestaurantID: restaurantID,
				Client:       c,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
