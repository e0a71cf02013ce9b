// Package themes is the catalog of card themes offered by the service.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme describes one selectable card theme.
type Theme struct {
	ID    string
	Name  string
	Color lipgloss.Color
}

// DefaultID is the theme used when none is configured.
const DefaultID = "default"

var catalog = []Theme{
	{ID: "default", Name: "Dark", Color: "#1a1b27"},
	{ID: "light", Name: "Light", Color: "#ffffff"},
	{ID: "neon", Name: "Neon", Color: "#00ffff"},
	{ID: "glass", Name: "Glass", Color: "#888888"},
	{ID: "cyberpunk", Name: "Cyber", Color: "#fcee0a"},
	{ID: "dracula", Name: "Dracula", Color: "#bd93f9"},
	{ID: "monokai", Name: "Monokai", Color: "#a6e22e"},
	{ID: "nord", Name: "Nord", Color: "#88c0d0"},
	{ID: "solarized_light", Name: "Solarized Light", Color: "#fdf6e3"},
	{ID: "solarized_dark", Name: "Solarized Dark", Color: "#002b36"},
	{ID: "cobalt", Name: "Cobalt", Color: "#002240"},
	{ID: "synthwave", Name: "Synthwave", Color: "#ff71ce"},
	{ID: "high_contrast", Name: "High Contrast", Color: "#000000"},
	{ID: "gruvbox", Name: "Gruvbox", Color: "#fe8019"},
	{ID: "tokyonight", Name: "Tokyo Night", Color: "#7aa2f7"},
}

// All returns every theme in display order.
func All() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

// IDs returns every theme id in display order.
func IDs() []string {
	ids := make([]string, len(catalog))
	for i, t := range catalog {
		ids[i] = t.ID
	}
	return ids
}

// Lookup returns the theme with the given id.
func Lookup(id string) (Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Index returns the display position of id, or -1.
func Index(id string) int {
	for i, t := range catalog {
		if t.ID == id {
			return i
		}
	}
	return -1
}
