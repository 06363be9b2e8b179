package restaurant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/printers"
)

type Restaurant struct {
	RestaurantID int
	Client       *client.Client
}

func (r *Restaurant) Do(ctx context.Context) error {
	if r.Client == nil {
		return errors.New("can not get restaurant, no client")
	}
	pp := printers.PrettyPrint{}
	fmt.Println("")

	detail, err := r.Client.RestaurantMenus(ctx, r.RestaurantID)
	if err != nil || detail == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no data available\n\n")
		return nil
	}

	pp.RestaurantDetail(detail, time.Now())
	return nil
}
