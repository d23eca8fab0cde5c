package page

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/i-shreyansh/portfolio/internal/application/service"
	"github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

var tracer = otel.Tracer("github.com/i-shreyansh/portfolio/internal/application/usecase/page")

type RenderPageUseCase struct {
	portfolioUseCase *portfolio.PortfolioUseCase
	renderer         service.PageRenderer
	cache            service.PageCache
	logger           logger.Logger
}

func NewRenderPageUseCase(
	portfolioUC *portfolio.PortfolioUseCase,
	renderer service.PageRenderer,
	cache service.PageCache,
	log logger.Logger,
) *RenderPageUseCase {
	return &RenderPageUseCase{
		portfolioUseCase: portfolioUC,
		renderer:         renderer,
		cache:            cache,
		logger:           log,
	}
}

type RenderPageInput struct {
	State uistate.State
}

type RenderPageOutput struct {
	HTML   []byte
	Cached bool
}

// CacheKey identifies a rendered page. version pins the content and the
// renderer settings, since a shared cache outlives any one process.
func CacheKey(version string, s uistate.State) string {
	return "portfolio:page:" + version + ":" + string(s.Theme) + ":" + string(s.ActiveSection) + ":" + strconv.FormatBool(s.MenuOpen)
}

// Version hashes the renderer fingerprint together with the content
// snapshot.
func Version(renderer service.PageRenderer, content *portfolio.Portfolio) (string, error) {
	d := xxhash.New()
	d.WriteString(renderer.Fingerprint())
	d.WriteString("\n")
	if err := json.NewEncoder(d).Encode(content); err != nil {
		return "", fmt.Errorf("hash page content: %w", err)
	}
	return strconv.FormatUint(d.Sum64(), 16), nil
}

func (uc *RenderPageUseCase) Execute(ctx context.Context, input RenderPageInput) (*RenderPageOutput, error) {
	ctx, span := tracer.Start(ctx, "RenderPage")
	defer span.End()
	span.SetAttributes(
		attribute.String("page.theme", string(input.State.Theme)),
		attribute.String("page.active_section", string(input.State.ActiveSection)),
		attribute.Bool("page.menu_open", input.State.MenuOpen),
	)

	content, err := uc.portfolioUseCase.ExecuteGetPortfolio(ctx)
	if err != nil {
		return nil, fmt.Errorf("render page failed: %w", err)
	}

	version, err := Version(uc.renderer, content)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("page.version", version))

	key := CacheKey(version, input.State)
	if uc.cache != nil {
		html, err := uc.cache.Get(ctx, key)
		if err == nil {
			span.SetAttributes(attribute.Bool("page.cache_hit", true))
			return &RenderPageOutput{HTML: html, Cached: true}, nil
		}
		if !errors.Is(err, service.ErrCacheMiss) {
			uc.logger.Warn("Page cache read failed, rendering", zap.String("key", key), zap.Error(err))
		}
	}

	var buf bytes.Buffer
	if err := uc.renderer.Render(ctx, &buf, content, input.State); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("render page failed: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, buf.Bytes()); err != nil {
			uc.logger.Warn("Page cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return &RenderPageOutput{HTML: buf.Bytes()}, nil
}
