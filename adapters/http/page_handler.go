package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/i-shreyansh/portfolio/adapters/view"
	pageUC "github.com/i-shreyansh/portfolio/internal/application/usecase/page"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/internal/domain/uistate"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type PageHandler struct {
	renderPageUseCase *pageUC.RenderPageUseCase
	defaultTheme      uistate.Theme
	logger            logger.Logger
}

func NewPageHandler(uc *pageUC.RenderPageUseCase, defaultTheme uistate.Theme, log logger.Logger) *PageHandler {
	return &PageHandler{
		renderPageUseCase: uc,
		defaultTheme:      defaultTheme,
		logger:            log,
	}
}

// StateFromQuery reads the UI state carried in the page URL. Anything
// unrecognised falls back to the initial state.
func StateFromQuery(c *gin.Context, defaultTheme uistate.Theme) uistate.State {
	s := uistate.New(defaultTheme)
	if t, err := uistate.ParseTheme(c.Query(view.ParamTheme)); err == nil {
		s.Theme = t
	}
	if id, ok := section.Parse(c.Query(view.ParamSection)); ok {
		s.ActiveSection = id
	}
	s.MenuOpen = c.Query(view.ParamMenu) == view.MenuOpen
	return s
}

func (h *PageHandler) GetPage(c *gin.Context) {
	state := StateFromQuery(c, h.defaultTheme)

	output, err := h.renderPageUseCase.Execute(c.Request.Context(), pageUC.RenderPageInput{State: state})
	if err != nil {
		c.Error(err)
		return
	}

	if output.Cached {
		requestID, _ := GetRequestIDFromGinContext(c)
		h.logger.Debug("Served cached page", zap.String("request_id", requestID))
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", output.HTML)
}

func (h *PageHandler) GetScript(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "application/javascript; charset=utf-8", view.ScrollSpyScript())
}
