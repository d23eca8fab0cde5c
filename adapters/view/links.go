package view

import (
	"net/url"

	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
)

// Query parameters that carry the UI state between page loads.
const (
	ParamTheme   = "theme"
	ParamSection = "section"
	ParamMenu    = "menu"
	MenuOpen     = "open"
)

// StateURL encodes s as a link back to the page, optionally jumping to an
// anchor. A closed menu is the absence of the menu parameter.
func StateURL(s uistate.State, anchor section.ID) string {
	q := url.Values{}
	q.Set(ParamTheme, string(s.Theme))
	if s.ActiveSection != "" {
		q.Set(ParamSection, string(s.ActiveSection))
	}
	if s.MenuOpen {
		q.Set(ParamMenu, MenuOpen)
	}
	u := "/?" + q.Encode()
	if anchor != "" {
		u += "#" + string(anchor)
	}
	return u
}

// anchorScroller scrolls by way of the URL fragment: the browser jumps to
// the anchor when the link is followed.
type anchorScroller struct {
	anchor section.ID
}

func (a *anchorScroller) ScrollIntoView(id section.ID, smooth bool) bool {
	a.anchor = id
	return true
}

// NavigationURL is the link behind a navigation item: the state after
// navigating to id, anchored wherever the navigation scrolled.
func NavigationURL(s uistate.State, id section.ID) string {
	var sc anchorScroller
	next := s.Navigate(id, &sc)
	return StateURL(next, sc.anchor)
}
