// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// ServerOptions overrides where the Good Stuff service lives.
type ServerOptions struct {
	Server string
}

func AddServerArgs(cmd *cobra.Command, o *ServerOptions) {
	cmd.PersistentFlags().StringVar(&o.Server, "server", "",
		`Server address, example: --server="http://127.0.0.1:8000". Overrides config.`)
}
