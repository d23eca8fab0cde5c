package view

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/i-shreyansh/portfolio/internal/domain/section"
)

func navBar(p *page) g.Node {
	return h.Nav(
		h.Class("fixed w-full z-50 transition-all duration-300 backdrop-blur-sm shadow-lg "+p.palette.Nav),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("flex justify-between items-center h-16"),
				h.Div(
					h.Class("text-xl font-bold bg-gradient-to-r from-blue-500 to-yellow-400 bg-clip-text text-transparent"),
					g.Text(p.content.Profile.ShortName),
				),
				h.Div(
					h.Class("hidden md:flex space-x-8"),
					g.Map(section.All(), func(id section.ID) g.Node {
						return navItem(p, id, "transition-colors", p.palette.NavItemActive, p.palette.NavItem)
					}),
				),
				h.Div(
					h.Class("flex items-center space-x-4"),
					themeToggle(p),
					menuToggle(p),
				),
			),
		),
		g.If(p.state.MenuOpen, mobileMenu(p)),
	)
}

// navItem renders one navigation link. Both class variants are carried as
// data attributes so the client script can move the highlight.
func navItem(p *page, id section.ID, base, active, inactive string) g.Node {
	class := inactive
	if p.state.ActiveSection == id {
		class = active
	}
	return h.A(
		h.Href(NavigationURL(p.state, id)),
		h.Class(base+" "+class),
		h.Data("nav", string(id)),
		h.Data("base-class", base),
		h.Data("active-class", active),
		h.Data("inactive-class", inactive),
		g.Text(id.Label()),
	)
}

func themeToggle(p *page) g.Node {
	icon := strokeIcon(iconMoon, "w-5 h-5")
	if p.state.Theme.Dark() {
		icon = strokeIcon(iconSun, "w-5 h-5")
	}
	return h.A(
		h.Href(StateURL(p.state.ToggleTheme(), p.state.ActiveSection)),
		h.Class("p-2 rounded-lg transition-colors hover:bg-gray-200 dark:hover:bg-gray-800"),
		h.Aria("label", p.palette.ThemeToggleAlt),
		h.Data("keep-section", "true"),
		icon,
	)
}

// menuToggle carries both icons so the script can swap them after it
// closes the menu in place.
func menuToggle(p *page) g.Node {
	label := "Open menu"
	if p.state.MenuOpen {
		label = "Close menu"
	}
	return h.A(
		h.Href(StateURL(p.state.ToggleMenu(), p.state.ActiveSection)),
		h.Class("md:hidden p-2"),
		h.Aria("label", label),
		h.Data("menu-toggle", "true"),
		h.Data("keep-section", "true"),
		h.Span(g.If(p.state.MenuOpen, h.Class("hidden")), h.Data("icon", "open"), strokeIcon(iconMenu, "w-6 h-6")),
		h.Span(g.If(!p.state.MenuOpen, h.Class("hidden")), h.Data("icon", "close"), strokeIcon(iconX, "w-6 h-6")),
	)
}

func mobileMenu(p *page) g.Node {
	return h.Div(
		h.ID("mobile-menu"),
		h.Class("md:hidden border-t "+p.palette.MobilePanel),
		h.Div(
			h.Class("px-2 pt-2 pb-3 space-y-1"),
			g.Map(section.All(), func(id section.ID) g.Node {
				return navItem(p, id, "block w-full text-left px-3 py-2 rounded-md", p.palette.MobileActive, p.palette.MobileItem)
			}),
		),
	)
}
