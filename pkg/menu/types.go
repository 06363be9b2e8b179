package menu

import (
	"encoding/json"
	"strings"
)

// Restaurant is the stable entity the whole client pivots on. The backend
// owns it; the client never mutates one after fetch, only replaces it with a
// fresher copy.
type Restaurant struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Schedule string `json:"schedule"`
	URL      string `json:"url"`
	Cuisine  string `json:"cuisine"`
}

// NewRestaurant carries the fields required to create a restaurant. All of
// them are mandatory on the create endpoint.
type NewRestaurant struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Schedule string `json:"schedule"`
	URL      string `json:"url"`
	Cuisine  string `json:"cuisine"`
}

// Validate reports the first missing required field, or "".
func (r NewRestaurant) Validate() string {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "name"
	case strings.TrimSpace(r.Location) == "":
		return "location"
	case strings.TrimSpace(r.Schedule) == "":
		return "schedule"
	case strings.TrimSpace(r.URL) == "":
		return "url"
	case strings.TrimSpace(r.Cuisine) == "":
		return "cuisine"
	}
	return ""
}

// MenuVersion is a dated snapshot of a restaurant's menu. The backend lists
// versions newest-first; index 0 is the latest.
type MenuVersion struct {
	ID           int    `json:"menu_version_id"`
	CreationDate string `json:"creation_date"`
}

// FoodItem is a single dish. Price zero or negative means the parser could
// not extract one and the UI must not render it as currency.
type FoodItem struct {
	ID          int      `json:"food_id"`
	Name        string   `json:"food_name"`
	Description string   `json:"food_description,omitempty"`
	Price       float64  `json:"food_price"`
	Ingredients []string `json:"ingredients"`
}

// HasPrice reports whether the item carries a usable price.
func (f FoodItem) HasPrice() bool { return f.Price > 0 }

// SearchResult groups a restaurant with the food items matching a free-text
// allergy/ingredient query. Ephemeral, never persisted.
type SearchResult struct {
	Name     string     `json:"name"`
	Location string     `json:"location"`
	URL      string     `json:"url"`
	Foods    []FoodItem `json:"foods"`
}

// AvgPriceSummary is the per-restaurant price aggregate. The backend
// serializes the numbers inconsistently (sometimes decimal strings), so the
// fields are json.Number and read through the accessors.
type AvgPriceSummary struct {
	Avg json.Number `json:"avg_food_price"`
	Min json.Number `json:"min_food_price"`
	Max json.Number `json:"max_food_price"`
}

// AvgValue returns the average food price as a float, 0 when unparseable.
func (s AvgPriceSummary) AvgValue() float64 { return numberValue(s.Avg) }

// MinValue returns the minimum food price as a float, 0 when unparseable.
func (s AvgPriceSummary) MinValue() float64 { return numberValue(s.Min) }

// MaxValue returns the maximum food price as a float, 0 when unparseable.
func (s AvgPriceSummary) MaxValue() float64 { return numberValue(s.Max) }

func numberValue(n json.Number) float64 {
	v, err := n.Float64()
	if err != nil {
		return 0
	}
	return v
}

// RestaurantDetail is the get-menus-restaurant payload: restaurant fields
// plus the version list. Some backend responses use restaurant_name instead
// of name; DisplayName papers over that.
type RestaurantDetail struct {
	Restaurant
	RestaurantName string        `json:"restaurant_name,omitempty"`
	MenuVersions   []MenuVersion `json:"menu_versions"`
}

// DisplayName prefers restaurant_name when the plain name is absent.
func (d RestaurantDetail) DisplayName() string {
	if d.RestaurantName != "" {
		return d.RestaurantName
	}
	return d.Name
}

// MenuVersionDetail is the get-menu-version payload.
type MenuVersionDetail struct {
	MenuVersion MenuVersion `json:"menu_version"`
	FoodItems   []FoodItem  `json:"food_items"`
}
