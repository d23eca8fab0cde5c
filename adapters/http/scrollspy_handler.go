package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	scrollspyUC "github.com/i-shreyansh/portfolio/internal/application/usecase/scrollspy"
	"github.com/i-shreyansh/portfolio/pkg/apperror"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type ScrollSpyHandler struct {
	detectSectionUseCase *scrollspyUC.DetectSectionUseCase
	logger               logger.Logger
}

func NewScrollSpyHandler(uc *scrollspyUC.DetectSectionUseCase, log logger.Logger) *ScrollSpyHandler {
	return &ScrollSpyHandler{
		detectSectionUseCase: uc,
		logger:               log,
	}
}

func (h *ScrollSpyHandler) DetectSection(c *gin.Context) {
	var req DetectSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for scroll-spy", err))
		return
	}

	input := scrollspyUC.DetectSectionInput{
		ActiveSection: req.ActiveSection,
		Bounds:        req.ToDomainBounds(),
	}
	output, err := h.detectSectionUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, DetectSectionResponse{
		ActiveSection: string(output.ActiveSection),
		Changed:       output.Changed,
	})
}
