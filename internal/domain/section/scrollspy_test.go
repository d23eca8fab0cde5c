package section

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_FixedOrder(t *testing.T) {
	assert.Equal(t, []ID{"home", "about", "experience", "research", "projects", "skills", "contact"}, All())

	ids := All()
	ids[0] = "mutated"
	assert.Equal(t, Home, All()[0], "callers must not be able to reorder sections")
}

func TestParse(t *testing.T) {
	id, ok := Parse("  Research ")
	require.True(t, ok)
	assert.Equal(t, Research, id)
	assert.Equal(t, "Research", id.Label())

	_, ok = Parse("blog")
	assert.False(t, ok)
	_, ok = Parse("")
	assert.False(t, ok)
}

func TestScrollSpy_Detect(t *testing.T) {
	spy := NewScrollSpy(DefaultThreshold, FirstMatch)

	tests := []struct {
		name   string
		bounds BoundsMap
		want   ID
		ok     bool
	}{
		{
			name: "research straddles threshold",
			bounds: BoundsMap{
				Home:       {Top: -2000, Bottom: -1200},
				About:      {Top: -1200, Bottom: -400},
				Experience: {Top: -400, Bottom: 50},
				Research:   {Top: 50, Bottom: 900},
				Projects:   {Top: 900, Bottom: 1600},
			},
			want: Research,
			ok:   true,
		},
		{
			name:   "edges are inclusive",
			bounds: BoundsMap{Skills: {Top: 100, Bottom: 100}},
			want:   Skills,
			ok:     true,
		},
		{
			name: "first match wins on overlap",
			bounds: BoundsMap{
				About:   {Top: 0, Bottom: 200},
				Contact: {Top: 90, Bottom: 300},
			},
			want: About,
			ok:   true,
		},
		{
			name:   "nothing under the line",
			bounds: BoundsMap{Home: {Top: 200, Bottom: 900}},
			ok:     false,
		},
		{
			name:   "no anchors at all",
			bounds: BoundsMap{},
			ok:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := spy.Detect(tt.bounds)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScrollSpy_LastMatch(t *testing.T) {
	spy := NewScrollSpy(DefaultThreshold, LastMatch)
	got, ok := spy.Detect(BoundsMap{
		About:   {Top: 0, Bottom: 200},
		Contact: {Top: 90, Bottom: 300},
	})
	require.True(t, ok)
	assert.Equal(t, Contact, got)
}

func TestScrollSpy_CustomThreshold(t *testing.T) {
	spy := NewScrollSpy(400, "")
	assert.Equal(t, FirstMatch, spy.TieBreak)

	got, ok := spy.Detect(BoundsMap{
		Home:  {Top: -100, Bottom: 300},
		About: {Top: 300, Bottom: 1000},
	})
	require.True(t, ok)
	assert.Equal(t, About, got)
}

func TestScrollSpy_NextKeepsPreviousWhenNothingMatches(t *testing.T) {
	spy := NewScrollSpy(DefaultThreshold, FirstMatch)
	assert.Equal(t, Projects, spy.Next(Projects, BoundsMap{}))
	assert.Equal(t, Skills, spy.Next(Projects, BoundsMap{Skills: {Top: 0, Bottom: 500}}))
}

func TestScrollSpy_ResultIsAlwaysKnownOrPrevious(t *testing.T) {
	spy := NewScrollSpy(DefaultThreshold, FirstMatch)
	rng := rand.New(rand.NewSource(42))

	current := Home
	for i := 0; i < 1000; i++ {
		bounds := BoundsMap{}
		for _, id := range All() {
			if rng.Intn(4) == 0 {
				continue
			}
			top := rng.Float64()*3000 - 1500
			bounds[id] = Rect{Top: top, Bottom: top + rng.Float64()*800}
		}
		next := spy.Next(current, bounds)
		assert.True(t, next.Valid() || next == current, "unexpected section %q", next)
		current = next
	}
}

func TestParseTieBreak(t *testing.T) {
	tb, err := ParseTieBreak("LAST")
	require.NoError(t, err)
	assert.Equal(t, LastMatch, tb)

	tb, err = ParseTieBreak("")
	require.NoError(t, err)
	assert.Equal(t, FirstMatch, tb)

	_, err = ParseTieBreak("middle")
	assert.ErrorIs(t, err, ErrInvalidTieBreak)
}
