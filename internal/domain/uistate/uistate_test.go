package uistate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-shreyansh/portfolio/internal/domain/section"
)

type recordingScroller struct {
	calls []section.ID
}

func (r *recordingScroller) ScrollIntoView(id section.ID, smooth bool) bool {
	r.calls = append(r.calls, id)
	return true
}

func TestNew(t *testing.T) {
	s := New("")
	assert.Equal(t, ThemeDark, s.Theme)
	assert.Equal(t, section.Home, s.ActiveSection)
	assert.False(t, s.MenuOpen)
}

func TestToggleTheme_RoundTrip(t *testing.T) {
	for _, start := range []Theme{ThemeDark, ThemeLight} {
		s := New(start)
		once := s.ToggleTheme()
		assert.NotEqual(t, s.Theme, once.Theme)
		assert.Equal(t, s, once.ToggleTheme())
	}
}

func TestToggleMenu_RoundTrip(t *testing.T) {
	s := New(ThemeLight)
	open := s.ToggleMenu()
	assert.True(t, open.MenuOpen)
	assert.Equal(t, s, open.ToggleMenu())
}

func TestTogglesAreIndependent(t *testing.T) {
	s := State{Theme: ThemeLight, ActiveSection: section.Skills, MenuOpen: true}

	themed := s.ToggleTheme()
	assert.Equal(t, s.ActiveSection, themed.ActiveSection)
	assert.Equal(t, s.MenuOpen, themed.MenuOpen)

	menu := s.ToggleMenu()
	assert.Equal(t, s.Theme, menu.Theme)
	assert.Equal(t, s.ActiveSection, menu.ActiveSection)
}

func TestNavigate_ContactClosesMenu(t *testing.T) {
	for _, open := range []bool{true, false} {
		sc := &recordingScroller{}
		s := State{Theme: ThemeDark, ActiveSection: section.Home, MenuOpen: open}

		next := s.Navigate(section.Contact, sc)

		assert.Equal(t, []section.ID{section.Contact}, sc.calls)
		assert.False(t, next.MenuOpen)
		assert.Equal(t, section.Home, next.ActiveSection, "only the scroll-spy moves the highlight")
	}
}

func TestNavigate_UnknownSectionIsNoOpScroll(t *testing.T) {
	sc := &recordingScroller{}
	next := State{MenuOpen: true}.Navigate("blog", sc)
	assert.Empty(t, sc.calls)
	assert.False(t, next.MenuOpen)
}

func TestNavigate_Idempotent(t *testing.T) {
	sc := &recordingScroller{}
	s := New(ThemeDark)
	once := s.Navigate(section.About, sc)
	twice := once.Navigate(section.About, sc)
	assert.Equal(t, once, twice)
	assert.Len(t, sc.calls, 2)
}

func TestScrolled(t *testing.T) {
	spy := section.NewScrollSpy(section.DefaultThreshold, section.FirstMatch)
	s := New(ThemeDark)

	s = s.Scrolled(spy, section.BoundsMap{section.Research: {Top: 0, Bottom: 400}})
	assert.Equal(t, section.Research, s.ActiveSection)

	s = s.Scrolled(spy, section.BoundsMap{})
	assert.Equal(t, section.Research, s.ActiveSection)
}

func TestParseTheme(t *testing.T) {
	th, err := ParseTheme(" Light ")
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, th)
	assert.False(t, th.Dark())

	_, err = ParseTheme("solarized")
	assert.ErrorIs(t, err, ErrInvalidTheme)
}
