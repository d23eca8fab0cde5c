package portfolio_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-shreyansh/portfolio/adapters/content"
	"github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	"github.com/i-shreyansh/portfolio/pkg/apperror"
)

func newUseCase() *portfolio.PortfolioUseCase {
	c := content.Default()
	return portfolio.NewPortfolioUseCase(
		content.NewStaticProfileRepo(c),
		content.NewStaticExperienceRepo(c),
		content.NewStaticResearchRepo(c),
		content.NewStaticProjectRepo(c),
		content.NewStaticSkillRepo(c),
	)
}

func TestExecuteGetPortfolio(t *testing.T) {
	p, err := newUseCase().ExecuteGetPortfolio(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Shreyansh", p.Profile.ShortName)
	assert.Len(t, p.Experience, 3)
	assert.Len(t, p.Research, 2)
	assert.Len(t, p.Projects, 4)
	assert.Len(t, p.Skills, 4)
	assert.NotEmpty(t, p.Coursework)
}

func TestExecuteGetProject(t *testing.T) {
	uc := newUseCase()

	p, err := uc.ExecuteGetProject(context.Background(), "go-corona-updater")
	require.NoError(t, err)
	assert.Equal(t, "June 2021", p.Date)

	_, err = uc.ExecuteGetProject(context.Background(), "unknown")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
