package options

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

// UploadOptions
type UploadOptions struct {
	File           string
	RestaurantID   int
	RestaurantName string

	Name     string
	Location string
	Schedule string
	URL      string
	Cuisine  string
}

func AddUploadArgs(cmd *cobra.Command, o *UploadOptions) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Path to the menu PDF.")
	cmd.Flags().IntVar(&o.RestaurantID, "restaurant", 0, "Attach to this restaurant id.")
	cmd.Flags().StringVar(&o.RestaurantName, "restaurant-name", "", "Attach to the restaurant with this exact name.")

	cmd.Flags().StringVar(&o.Name, "name", "", "Create a new restaurant with this name.")
	cmd.Flags().StringVar(&o.Location, "location", "", "Location for the new restaurant.")
	cmd.Flags().StringVar(&o.Schedule, "schedule", "", `Opening hours for the new restaurant, example: "09:00-17:00".`)
	cmd.Flags().StringVar(&o.URL, "url", "", "Website for the new restaurant.")
	cmd.Flags().StringVar(&o.Cuisine, "cuisine", "", "Cuisine for the new restaurant.")
}

// ResolveFile accepts a positional menu path when --file was not given.
func (o *UploadOptions) ResolveFile(args []string) {
	if o.File == "" && len(args) > 0 {
		o.File = args[0]
	}
}

// NewRestaurant assembles the create payload when --name is set.
func (o *UploadOptions) NewRestaurant() *menu.NewRestaurant {
	if strings.TrimSpace(o.Name) == "" {
		return nil
	}
	return &menu.NewRestaurant{
		Name:     o.Name,
		Location: o.Location,
		Schedule: o.Schedule,
		URL:      o.URL,
		Cuisine:  o.Cuisine,
	}
}

// Validate checks that a menu file is given and exactly one attachment
// target is selected.
func (o *UploadOptions) Validate() error {
	if strings.TrimSpace(o.File) == "" {
		return errors.New("a menu PDF is required, positional or --file")
	}
	targets := 0
	if o.RestaurantID != 0 {
		targets++
	}
	if strings.TrimSpace(o.RestaurantName) != "" {
		targets++
	}
	if o.NewRestaurant() != nil {
		targets++
	}
	switch targets {
	case 0:
		return errors.New("pick a target: --restaurant, --restaurant-name, or --name with the new restaurant fields")
	case 1:
		return nil
	default:
		return errors.New("only one of --restaurant, --restaurant-name, or --name may be set")
	}
}
