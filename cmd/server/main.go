package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/i-shreyansh/portfolio/adapters/cache"
	"github.com/i-shreyansh/portfolio/adapters/content"
	httpAdapter "github.com/i-shreyansh/portfolio/adapters/http"
	"github.com/i-shreyansh/portfolio/adapters/view"
	"github.com/i-shreyansh/portfolio/internal/application/service"
	feedUC "github.com/i-shreyansh/portfolio/internal/application/usecase/feed"
	pageUC "github.com/i-shreyansh/portfolio/internal/application/usecase/page"
	portfolioUC "github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	scrollspyUC "github.com/i-shreyansh/portfolio/internal/application/usecase/scrollspy"
	"github.com/i-shreyansh/portfolio/internal/config"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
	"github.com/i-shreyansh/portfolio/pkg/logger"
	"github.com/i-shreyansh/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env, cfg.App.LogLevel)
	defer appLogger.Sync()

	appLogger.Info("Start Portfolio Server...")

	tp, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	if tp != nil {
		defer tp.Shutdown(context.Background())
	}

	// Page settings
	tieBreak, err := section.ParseTieBreak(cfg.Page.ScrollTieBreak)
	if err != nil {
		appLogger.Fatal("invalid page.scroll_tie_break", err)
	}
	defaultTheme, err := uistate.ParseTheme(cfg.Page.DefaultTheme)
	if err != nil {
		appLogger.Fatal("invalid page.default_theme", err)
	}
	spy := section.NewScrollSpy(cfg.Page.ScrollThreshold, tieBreak)

	// Content
	catalog, err := content.Load(cfg.Content.Path, appLogger)
	if err != nil {
		appLogger.Fatal("cannot load content", err)
	}

	// Page cache
	var pageCache service.PageCache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		pageCache = cache.NewRedisPageCache(redisClient, cfg.Cache.TTL)
	} else {
		pageCache = cache.NewMemoryPageCache(cfg.Cache.TTL)
	}

	// Repositories
	profileRepo := content.NewStaticProfileRepo(catalog)
	experienceRepo := content.NewStaticExperienceRepo(catalog)
	researchRepo := content.NewStaticResearchRepo(catalog)
	projectRepo := content.NewStaticProjectRepo(catalog)
	skillRepo := content.NewStaticSkillRepo(catalog)

	// Use Cases
	portfolioUseCase := portfolioUC.NewPortfolioUseCase(profileRepo, experienceRepo, researchRepo, projectRepo, skillRepo)
	renderPageUseCase := pageUC.NewRenderPageUseCase(portfolioUseCase, view.NewRenderer(spy), pageCache, appLogger)
	detectSectionUseCase := scrollspyUC.NewDetectSectionUseCase(spy, appLogger)
	projectsFeedUseCase := feedUC.NewProjectsFeedUseCase(profileRepo, projectRepo, cfg.App.BaseURL, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Page:      httpAdapter.NewPageHandler(renderPageUseCase, defaultTheme, appLogger),
		Content:   httpAdapter.NewContentHandler(portfolioUseCase, appLogger),
		ScrollSpy: httpAdapter.NewScrollSpyHandler(detectSectionUseCase, appLogger),
		RSS:       httpAdapter.NewRSSHandler(projectsFeedUseCase, appLogger),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := httpAdapter.NewRouter(handlers, appLogger)

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port), zap.Float64("scroll_threshold", spy.Threshold))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server forced to shutdown", err)
	}
}
