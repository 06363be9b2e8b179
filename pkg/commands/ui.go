package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goodstuffhq/goodstuff/pkg/commands/options"
	"github.com/goodstuffhq/goodstuff/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	io := &options.UIOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
goodstuff ui
goodstuff ui --restaurant 12
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			i := ui.UI{
				RestaurantID:  io.RestaurantID,
				MenuVersionID: io.MenuVersionID,
				Client:        c,
			}
			return i.Do(context.Background())
		},
	}

	options.AddUIArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
