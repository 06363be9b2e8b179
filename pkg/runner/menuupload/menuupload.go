package menuupload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
	"github.com/goodstuffhq/goodstuff/pkg/upload"
)

// Upload drives the CLI upload flow. Either RestaurantID, RestaurantName
// (resolved against the restaurant list), or New must identify the target.
type Upload struct {
	Path           string
	RestaurantID   int
	RestaurantName string
	New            *menu.NewRestaurant
	Client         *client.Client
}

func (u *Upload) Do(ctx context.Context) error {
	if u.Client == nil {
		return errors.New("can not upload, no client")
	}
	if u.Path == "" {
		return errors.New("no menu file given")
	}

	file, err := os.Open(u.Path)
	if err != nil {
		return fmt.Errorf("open menu file: %w", err)
	}
	defer file.Close()

	req := upload.Request{
		RestaurantID:  u.RestaurantID,
		NewRestaurant: u.New,
		Filename:      filepath.Base(u.Path),
		File:          file,
	}

	if req.RestaurantID == 0 && req.NewRestaurant == nil {
		if u.RestaurantName == "" {
			return errors.New("no restaurant given; use --restaurant-id, --restaurant, or --new")
		}
		restaurants, err := u.Client.ListRestaurants(ctx)
		if err != nil {
			return fmt.Errorf("resolve restaurant %q: %w", u.RestaurantName, err)
		}
		match, ok := menu.FindByName(restaurants, u.RestaurantName)
		if !ok {
			return fmt.Errorf("no restaurant named %q", u.RestaurantName)
		}
		req.RestaurantID = match.ID
	}

	id, err := upload.Run(ctx, u.Client, req)
	if err != nil {
		return err
	}

	ok := color.New(color.FgGreen)
	_, _ = ok.Printf("\nmenu uploaded for restaurant %d\n\n", id)
	return nil
}
