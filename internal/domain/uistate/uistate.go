package uistate

import (
	"errors"
	"strings"

	"github.com/i-shreyansh/portfolio/internal/domain/section"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

var ErrInvalidTheme = errors.New("theme must be 'dark' or 'light'")

func ParseTheme(raw string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(raw))) {
	case ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	default:
		return "", ErrInvalidTheme
	}
}

func (t Theme) Dark() bool {
	return t != ThemeLight
}

func (t Theme) Toggle() Theme {
	if t.Dark() {
		return ThemeLight
	}
	return ThemeDark
}

// State is the per-view UI state. The three fields are independent.
type State struct {
	Theme         Theme
	ActiveSection section.ID
	MenuOpen      bool
}

func New(theme Theme) State {
	if theme == "" {
		theme = ThemeDark
	}
	return State{Theme: theme, ActiveSection: section.Home}
}

func (s State) ToggleTheme() State {
	s.Theme = s.Theme.Toggle()
	return s
}

func (s State) ToggleMenu() State {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Scrolled applies a scroll event: the spy's pick replaces the active
// section, and an empty pick leaves it alone.
func (s State) Scrolled(spy *section.ScrollSpy, bounds section.BoundsProvider) State {
	s.ActiveSection = spy.Next(s.ActiveSection, bounds)
	return s
}

// Scroller moves the viewport to a section anchor. It returns false when
// the anchor does not exist.
type Scroller interface {
	ScrollIntoView(id section.ID, smooth bool) bool
}

// Navigate scrolls to id and closes the menu. An unknown id does not
// scroll but the menu is closed all the same.
func (s State) Navigate(id section.ID, scroller Scroller) State {
	if scroller != nil && id.Valid() {
		scroller.ScrollIntoView(id, true)
	}
	s.MenuOpen = false
	return s
}
