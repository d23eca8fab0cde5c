package view

import "github.com/i-shreyansh/portfolio/internal/domain/uistate"

// Palette holds the class variants that depend on the theme. Everything
// theme-sensitive in the page reads from here.
type Palette struct {
	Root           string
	Nav            string
	NavItem        string
	NavItemActive  string
	MobilePanel    string
	MobileItem     string
	MobileActive   string
	Muted          string
	Subtle         string
	Body           string
	AltSection     string
	Card           string
	Panel          string
	Chip           string
	Tag            string
	Footer         string
	ThemeToggleAlt string
}

var darkPalette = Palette{
	Root:           "bg-gray-900 text-white",
	Nav:            "bg-gray-900/95",
	NavItem:        "text-gray-300 hover:text-yellow-400",
	NavItemActive:  "text-yellow-400",
	MobilePanel:    "bg-gray-800 border-gray-700",
	MobileItem:     "hover:bg-gray-700",
	MobileActive:   "bg-yellow-400 text-gray-900",
	Muted:          "text-gray-300",
	Subtle:         "text-gray-400",
	Body:           "text-gray-300",
	AltSection:     "bg-gray-800",
	Card:           "bg-gray-800",
	Panel:          "bg-gray-700",
	Chip:           "bg-gray-600",
	Tag:            "bg-blue-900 text-blue-200",
	Footer:         "bg-gray-800 border-gray-700",
	ThemeToggleAlt: "Switch to light theme",
}

var lightPalette = Palette{
	Root:           "bg-gray-50 text-gray-900",
	Nav:            "bg-white/95",
	NavItem:        "text-gray-600 hover:text-blue-600",
	NavItemActive:  "text-yellow-400",
	MobilePanel:    "bg-white border-gray-200",
	MobileItem:     "hover:bg-gray-100",
	MobileActive:   "bg-yellow-400 text-gray-900",
	Muted:          "text-gray-600",
	Subtle:         "text-gray-600",
	Body:           "text-gray-700",
	AltSection:     "bg-white",
	Card:           "bg-white",
	Panel:          "bg-gray-100",
	Chip:           "bg-white",
	Tag:            "bg-blue-100 text-blue-800",
	Footer:         "bg-white border-gray-200",
	ThemeToggleAlt: "Switch to dark theme",
}

func PaletteFor(t uistate.Theme) Palette {
	if t.Dark() {
		return darkPalette
	}
	return lightPalette
}
