package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/goodstuffhq/goodstuff/pkg/runner/librarylist"
)

func addLibrary(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "List every restaurant with its average dish prices.",
		Example: `
goodstuff library
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			l := librarylist.List{Client: c}
			err = l.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
