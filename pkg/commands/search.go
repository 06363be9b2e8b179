package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/goodstuffhq/goodstuff/pkg/commands/options"
	"github.com/goodstuffhq/goodstuff/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	qo := &options.SearchOptions{}

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search every menu for dishes and ingredients.",
		Example: `
goodstuff search peanut
goodstuff search "gluten free" --ingredients
`,
		Args: func(cmd *cobra.Command, args []string) error {
			qo.Query = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			s := search.Search{
				Query:           qo.Query,
				ShowIngredients: qo.Ingredients,
				Client:          c,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddIngredientsArg(cmd, qo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
