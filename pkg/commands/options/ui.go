package options

import (
	"github.com/spf13/cobra"
)

// UIOptions
type UIOptions struct {
	RestaurantID  int
	MenuVersionID int
}

func AddUIArgs(cmd *cobra.Command, o *UIOptions) {
	cmd.Flags().IntVar(&o.RestaurantID, "restaurant", 0, "Open this restaurant directly.")
	cmd.Flags().IntVar(&o.MenuVersionID, "menu", 0, "Open this menu version directly.")
}
