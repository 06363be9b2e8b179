package menu

import "strings"

// Suggest filters restaurants by a case-insensitive substring match on the
// name, the as-you-type behavior of the upload form. An empty or whitespace
// query yields no suggestions, not the full list.
func Suggest(restaurants []Restaurant, query string) []Restaurant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Restaurant
	for _, r := range restaurants {
		if strings.Contains(strings.ToLower(r.Name), q) {
			out = append(out, r)
		}
	}
	return out
}

// FindByName returns the restaurant whose name matches exactly, used when the
// upload form resolves the typed name back to an id at submit time.
func FindByName(restaurants []Restaurant, name string) (Restaurant, bool) {
	for _, r := range restaurants {
		if r.Name == name {
			return r, true
		}
	}
	return Restaurant{}, false
}
