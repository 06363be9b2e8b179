package menuversion

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/goodstuffhq/goodstuff/pkg/client"
	"github.com/goodstuffhq/goodstuff/pkg/printers"
)

type MenuVersion struct {
	MenuVersionID   int
	ShowIngredients bool
	Client          *client.Client
}

func (m *MenuVersion) Do(ctx context.Context) error {
	if m.Client == nil {
		return errors.New("can not get menu version, no client")
	}
	pp := printers.PrettyPrint{ShowIngredients: m.ShowIngredients}
	fmt.Println("")

	detail, err := m.Client.MenuVersion(ctx, m.MenuVersionID)
	if err != nil || detail == nil {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no data available\n\n")
		return nil
	}

	pp.MenuDetail(detail)
	return nil
}
