package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	so = &options.ServerOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "goodstuff",
		Short: base.Wrap80("Restaurant menus, prices, and allergy-aware search on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddServerArgs(cmd, so)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addSearch(topLevel)
	addLibrary(topLevel)
	addRestaurant(topLevel)
	addMenu(topLevel)
	addUpload(topLevel)
	addVersion(topLevel)
}

// newClient resolves configuration and builds the API client, honoring the
// --server override.
func newClient() (*client.Client, error) {
	if so.Server != "" {
		return client.New(client.StaticConfig(so.Server)), nil
	}
	cfg, err := client.LoadConfig()
	if err != nil {
		return nil, err
	}
	return client.New(cfg), nil
}
