package page

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/i-shreyansh/portfolio/adapters/cache"
	"github.com/i-shreyansh/portfolio/adapters/content"
	"github.com/i-shreyansh/portfolio/adapters/view"
	"github.com/i-shreyansh/portfolio/internal/application/service"
	"github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type countingRenderer struct {
	calls       int
	err         error
	fingerprint string
}

func (r *countingRenderer) Fingerprint() string {
	return r.fingerprint
}

func (r *countingRenderer) Render(ctx context.Context, w io.Writer, c *portfolio.Portfolio, s uistate.State) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	_, err := io.WriteString(w, c.Profile.ShortName+":"+string(s.Theme)+":"+string(s.ActiveSection))
	return err
}

type mapCache struct {
	mu      sync.Mutex
	pages   map[string][]byte
	failGet bool
}

func (m *mapCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errors.New("connection refused")
	}
	p, ok := m.pages[key]
	if !ok {
		return nil, service.ErrCacheMiss
	}
	return p, nil
}

func (m *mapCache) Set(ctx context.Context, key string, page []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[key] = page
	return nil
}

func newPortfolioUseCase() *portfolio.PortfolioUseCase {
	return portfolioUseCaseFor(content.Default())
}

func portfolioUseCaseFor(c *content.Catalog) *portfolio.PortfolioUseCase {
	return portfolio.NewPortfolioUseCase(
		content.NewStaticProfileRepo(c),
		content.NewStaticExperienceRepo(c),
		content.NewStaticResearchRepo(c),
		content.NewStaticProjectRepo(c),
		content.NewStaticSkillRepo(c),
	)
}

func TestRenderPage_CachesByState(t *testing.T) {
	ctx := context.Background()
	r := &countingRenderer{}
	pc := &mapCache{pages: map[string][]byte{}}
	uc := NewRenderPageUseCase(newPortfolioUseCase(), r, pc, logger.NewNopLogger())

	s := uistate.New(uistate.ThemeDark)
	first, err := uc.Execute(ctx, RenderPageInput{State: s})
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := uc.Execute(ctx, RenderPageInput{State: s})
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.HTML, second.HTML)
	assert.Equal(t, 1, r.calls)

	_, err = uc.Execute(ctx, RenderPageInput{State: s.ToggleTheme()})
	require.NoError(t, err)
	assert.Equal(t, 2, r.calls)
}

func TestRenderPage_CacheFailureFallsBackToRender(t *testing.T) {
	r := &countingRenderer{}
	pc := &mapCache{pages: map[string][]byte{}, failGet: true}
	uc := NewRenderPageUseCase(newPortfolioUseCase(), r, pc, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), RenderPageInput{State: uistate.New(uistate.ThemeLight)})
	require.NoError(t, err)
	assert.Equal(t, "Shreyansh:light:home", string(out.HTML))
}

func TestRenderPage_NoCache(t *testing.T) {
	r := &countingRenderer{}
	uc := NewRenderPageUseCase(newPortfolioUseCase(), r, nil, logger.NewNopLogger())

	for i := 0; i < 2; i++ {
		_, err := uc.Execute(context.Background(), RenderPageInput{State: uistate.New(uistate.ThemeDark)})
		require.NoError(t, err)
	}
	assert.Equal(t, 2, r.calls)
}

func TestRenderPage_RendererError(t *testing.T) {
	boom := errors.New("boom")
	uc := NewRenderPageUseCase(newPortfolioUseCase(), &countingRenderer{err: boom}, nil, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), RenderPageInput{State: uistate.New(uistate.ThemeDark)})
	assert.ErrorIs(t, err, boom)
}

func TestCacheKey(t *testing.T) {
	s := uistate.State{Theme: uistate.ThemeLight, ActiveSection: section.Skills, MenuOpen: true}
	assert.Equal(t, "portfolio:page:abc:light:skills:true", CacheKey("abc", s))
	assert.NotEqual(t, CacheKey("abc", s), CacheKey("abc", s.ToggleMenu()))
	assert.NotEqual(t, CacheKey("abc", s), CacheKey("abd", s))
}

func TestRenderPage_SharedCacheSeparatesScrollSettings(t *testing.T) {
	ctx := context.Background()
	shared := cache.NewMemoryPageCache(time.Minute)
	log := logger.NewNopLogger()
	state := uistate.New(uistate.ThemeDark)

	first := NewRenderPageUseCase(newPortfolioUseCase(),
		view.NewRenderer(section.NewScrollSpy(100, section.FirstMatch)), shared, log)
	second := NewRenderPageUseCase(newPortfolioUseCase(),
		view.NewRenderer(section.NewScrollSpy(250, section.LastMatch)), shared, log)

	_, err := first.Execute(ctx, RenderPageInput{State: state})
	require.NoError(t, err)

	out, err := second.Execute(ctx, RenderPageInput{State: state})
	require.NoError(t, err)
	assert.False(t, out.Cached)
	assert.Contains(t, string(out.HTML), `data-scroll-threshold="250"`)
	assert.Contains(t, string(out.HTML), `data-tie-break="last"`)

	again, err := second.Execute(ctx, RenderPageInput{State: state})
	require.NoError(t, err)
	assert.True(t, again.Cached)
	assert.Equal(t, out.HTML, again.HTML)
}

func TestRenderPage_SharedCacheSeparatesContent(t *testing.T) {
	ctx := context.Background()
	shared := &mapCache{pages: map[string][]byte{}}
	r := &countingRenderer{fingerprint: "same"}
	state := uistate.New(uistate.ThemeDark)

	edited := content.Default()
	edited.Profile.ShortName = "Ada"

	_, err := NewRenderPageUseCase(newPortfolioUseCase(), r, shared, logger.NewNopLogger()).
		Execute(ctx, RenderPageInput{State: state})
	require.NoError(t, err)

	out, err := NewRenderPageUseCase(portfolioUseCaseFor(edited), r, shared, logger.NewNopLogger()).
		Execute(ctx, RenderPageInput{State: state})
	require.NoError(t, err)
	assert.False(t, out.Cached)
	assert.Equal(t, "Ada:dark:home", string(out.HTML))
	assert.Equal(t, 2, r.calls)
}
