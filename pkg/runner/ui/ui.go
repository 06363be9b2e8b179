package ui

import (
	"context"
	"errors"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/tui/app"
)

type UI struct {
	RestaurantID  int
	MenuVersionID int
	Client        *client.Client
}

func (u *UI) Do(ctx context.Context) error {
	if u.Client == nil {
		return errors.New("can not start ui, no client")
	}
	return app.Run(u.Client, app.Options{
		RestaurantID:  u.RestaurantID,
		MenuVersionID: u.MenuVersionID,
	})
}
