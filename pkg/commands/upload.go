package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/goodstuffhq/goodstuff/pkg/commands/options"
	"github.com/goodstuffhq/goodstuff/pkg/runner/menuupload"
)

func addUpload(topLevel *cobra.Command) {
	uo := &options.UploadOptions{}

	cmd := &cobra.Command{
		Use:   "upload [file.pdf]",
		Short: "Upload a PDF menu for a restaurant.",
		Long: base.Wrap80("Upload a PDF menu and attach it to a restaurant. " +
			"The target is an existing restaurant (--restaurant or --restaurant-name) " +
			"or a new one created on the spot (--name plus the other restaurant fields)."),
		Example: `
goodstuff upload menu.pdf --restaurant 12
goodstuff upload menu.pdf --restaurant-name "Trattoria Nonna"
goodstuff upload --file menu.pdf --name "Fresh Place" --location Dockside \
  --schedule 09:00-17:00 --url https://fresh.example --cuisine Seafood
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			uo.ResolveFile(args)
			return uo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			u := menuupload.Upload{
				Path:           uo.File,
				RestaurantID:   uo.RestaurantID,
				RestaurantName: uo.RestaurantName,
				New:            uo.NewRestaurant(),
				Client:         c,
			}
			err = u.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddUploadArgs(cmd, uo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
