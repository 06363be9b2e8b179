package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/goodstuffhq/goodstuff/pkg/library"
	"github.com/goodstuffhq/goodstuff/pkg/menu"
)

type PrettyPrint struct {
	ShowIngredients bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// SearchResults renders search hits grouped by restaurant.
func (pp *PrettyPrint) SearchResults(results ...menu.SearchResult) {
	if len(results) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no results\n\n")
		return
	}

	name := color.New(color.Bold)
	loc := color.New(color.Faint)
	link := color.New(color.FgGreen)

	for _, r := range results {
		_, _ = name.Println(r.Name)
		if r.Location != "" {
			_, _ = loc.Printf("  %s\n", r.Location)
		}
		if r.URL != "" {
			_, _ = link.Printf("  %s\n", r.URL)
		}
		pp.Foods(r.Foods...)
	}
}

// Foods renders the dishes of one restaurant or menu version.
func (pp *PrettyPrint) Foods(items ...menu.FoodItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print("  none\n\n")
		return
	}

	t := color.New()
	price := color.New(color.FgGreen, color.Bold)
	desc := color.New(color.Faint)
	tag := color.New(color.FgHiYellow, color.Faint)

	for _, item := range items {
		_, _ = t.Printf("  %s", item.Name)
		if p := menu.FormatPrice(item.Price); p != "" {
			_, _ = price.Printf("  %s", p)
		}
		_, _ = t.Println("")
		if item.Description != "" {
			_, _ = desc.Printf("    %s\n", item.Description)
		}
		if pp.ShowIngredients && len(item.Ingredients) > 0 {
			_, _ = tag.Printf("    %s\n", strings.Join(item.Ingredients, ", "))
		}
	}
	_, _ = t.Println("")
}

// Library renders the aggregated restaurant table.
func (pp *PrettyPrint) Library(entries ...library.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no restaurants with price data\n\n")
		return
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 40
	tbl.AddRow("ID", "NAME", "LOCATION", "SCHEDULE", "AVG", "RANGE")
	for _, e := range entries {
		r := e.Restaurant
		tbl.AddRow(
			r.ID,
			r.Name,
			r.Location,
			r.Schedule,
			menu.FormatDollar(e.Prices.AvgValue()),
			fmt.Sprintf("%s - %s", menu.FormatDollar(e.Prices.MinValue()), menu.FormatDollar(e.Prices.MaxValue())),
		)
	}
	fmt.Println(tbl)
	fmt.Println("")
}

// RestaurantDetail renders one restaurant with its version list.
func (pp *PrettyPrint) RestaurantDetail(d *menu.RestaurantDetail, now time.Time) {
	pp.Title(d.DisplayName())

	open := color.New(color.FgRed)
	status := "Currently Closed"
	if menu.IsOpen(d.Schedule, now) {
		open = color.New(color.FgGreen)
		status = "Currently Open"
	}
	_, _ = open.Println(status)

	t := color.New()
	faint := color.New(color.Faint)
	if d.Location != "" {
		_, _ = t.Println(d.Location)
	}
	if d.Schedule != "" {
		_, _ = faint.Println(d.Schedule)
	}
	if d.URL != "" {
		_, _ = color.New(color.FgGreen).Println(d.URL)
	}
	_, _ = t.Println("")

	if len(d.MenuVersions) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no menu versions\n\n")
		return
	}

	pp.Title("Menu Versions")
	for i, v := range d.MenuVersions {
		label := fmt.Sprintf("Version %d", len(d.MenuVersions)-i)
		if i == 0 {
			label += " (latest)"
		}
		_, _ = t.Printf("  %-22s", label)
		_, _ = faint.Printf("id %-6d created %s\n", v.ID, menu.ShortDate(v.CreationDate))
	}
	_, _ = t.Println("")
}

// MenuDetail renders one dated menu snapshot.
func (pp *PrettyPrint) MenuDetail(d *menu.MenuVersionDetail) {
	pp.Title("Menu")
	faint := color.New(color.Faint)
	_, _ = faint.Printf("Last Updated: %s\n\n", menu.FormatCreationDate(d.MenuVersion.CreationDate))
	pp.Foods(d.FoodItems...)
}
