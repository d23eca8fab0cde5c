package scrollspy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/pkg/apperror"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

func newUseCase() *DetectSectionUseCase {
	return NewDetectSectionUseCase(section.NewScrollSpy(section.DefaultThreshold, section.FirstMatch), logger.NewNopLogger())
}

func TestDetectSection(t *testing.T) {
	tests := []struct {
		name        string
		input       DetectSectionInput
		wantSection section.ID
		wantChanged bool
	}{
		{
			name: "moves to section under threshold",
			input: DetectSectionInput{
				ActiveSection: "home",
				Bounds: map[string]section.Rect{
					"home":  {Top: -900, Bottom: -10},
					"about": {Top: -10, Bottom: 700},
				},
			},
			wantSection: section.About,
			wantChanged: true,
		},
		{
			name: "keeps current when nothing matches",
			input: DetectSectionInput{
				ActiveSection: "skills",
				Bounds: map[string]section.Rect{
					"contact": {Top: 400, Bottom: 900},
				},
			},
			wantSection: section.Skills,
		},
		{
			name:        "empty active section starts at home",
			input:       DetectSectionInput{},
			wantSection: section.Home,
		},
		{
			name: "unknown ids are ignored",
			input: DetectSectionInput{
				ActiveSection: "about",
				Bounds: map[string]section.Rect{
					"blog":     {Top: 0, Bottom: 500},
					"projects": {Top: 50, Bottom: 600},
				},
			},
			wantSection: section.Projects,
			wantChanged: true,
		},
		{
			name: "keys must match ids exactly",
			input: DetectSectionInput{
				ActiveSection: "contact",
				Bounds: map[string]section.Rect{
					"home":     {Top: 0, Bottom: 50},
					"HOME":     {Top: 0, Bottom: 500},
					" skills ": {Top: 0, Bottom: 500},
				},
			},
			wantSection: section.Contact,
		},
	}

	uc := newUseCase()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSection, out.ActiveSection)
			assert.Equal(t, tt.wantChanged, out.Changed)
		})
	}
}

func TestDetectSection_CaseVariantKeysAreDeterministic(t *testing.T) {
	uc := newUseCase()
	input := DetectSectionInput{
		ActiveSection: "contact",
		Bounds: map[string]section.Rect{
			"home": {Top: 0, Bottom: 50},
			"HOME": {Top: 0, Bottom: 500},
		},
	}
	for i := 0; i < 200; i++ {
		out, err := uc.Execute(context.Background(), input)
		require.NoError(t, err)
		require.Equal(t, section.Contact, out.ActiveSection)
	}
}

func TestDetectSection_InvalidActiveSection(t *testing.T) {
	_, err := newUseCase().Execute(context.Background(), DetectSectionInput{ActiveSection: "blog"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
