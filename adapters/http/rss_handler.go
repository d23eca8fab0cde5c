package http

import (
	"github.com/gin-gonic/gin"

	feedUC "github.com/i-shreyansh/portfolio/internal/application/usecase/feed"
	"github.com/i-shreyansh/portfolio/pkg/apperror"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type RSSHandler struct {
	projectsFeedUseCase *feedUC.ProjectsFeedUseCase
	logger              logger.Logger
}

func NewRSSHandler(uc *feedUC.ProjectsFeedUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		projectsFeedUseCase: uc,
		logger:              log,
	}
}

func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	feed, err := h.projectsFeedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Header("Content-Type", "application/xml; charset=utf-8")

	if err := feed.WriteRss(c.Writer); err != nil {
		h.logger.Error("Failed to write RSS feed to response", err)
	}
}
