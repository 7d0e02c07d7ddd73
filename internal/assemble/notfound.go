package assemble

import "github.com/aldrenb/aldren-dev/internal/content"

// NotFoundPage is rendered for unknown routes and unknown project slugs.
type NotFoundPage struct {
	Chrome Chrome

	Title      string
	Body       string
	HomeButton Button
	WorkButton Button
}

// NotFound assembles the 404 page.
func NotFound(store *content.Store) NotFoundPage {
	return NotFoundPage{
		Chrome:     chrome(store),
		Title:      "Page not found",
		Body:       "The page you are looking for does not exist or has moved.",
		HomeButton: newButton("Back home", "/", "primary"),
		WorkButton: newButton("View work", "/#work", "secondary"),
	}
}
