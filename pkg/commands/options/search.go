package options

import (
	"github.com/spf13/cobra"
)

// SearchOptions
type SearchOptions struct {
	Query       string
	Ingredients bool
}

func AddIngredientsArg(cmd *cobra.Command, o *SearchOptions) {
	cmd.Flags().BoolVarP(&o.Ingredients, "ingredients", "i", false,
		"Show the ingredient list for every dish.")
}
