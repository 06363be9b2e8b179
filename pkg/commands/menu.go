package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/goodstuffhq/goodstuff/pkg/commands/options"
	"github.com/goodstuffhq/goodstuff/pkg/runner/menuversion"
)

func addMenu(topLevel *cobra.Command) {
	qo := &options.SearchOptions{}
	var menuVersionID int

	cmd := &cobra.Command{
		Use:   "menu <version-id>",
		Short: "Show every dish on one menu version.",
		Example: `
goodstuff menu 31
goodstuff menu 31 --ingredients
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a menu version id")
			}
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return errors.New("menu version id must be a positive number")
			}
			menuVersionID = id
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			m := menuversion.MenuVersion{
				MenuVersionID:   menuVersionID,
				ShowIngredients: qo.Ingredients,
				Client:          c,
			}
			err = m.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddIngredientsArg(cmd, qo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
