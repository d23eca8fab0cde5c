package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portfolioUC "github.com/i-shreyansh/portfolio/internal/application/usecase/portfolio"
	"github.com/i-shreyansh/portfolio/internal/domain/section"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type ContentHandler struct {
	portfolioUseCase *portfolioUC.PortfolioUseCase
	logger           logger.Logger
}

func NewContentHandler(uc *portfolioUC.PortfolioUseCase, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		portfolioUseCase: uc,
		logger:           log,
	}
}

func (h *ContentHandler) ListSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": ToSectionDTOs(section.All())})
}

func (h *ContentHandler) GetPortfolio(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteGetPortfolio(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"profile":    output.Profile,
		"experience": output.Experience,
		"research":   output.Research,
		"projects":   ToProjectDTOs(output.Projects),
		"skills":     output.Skills,
		"coursework": output.Coursework,
	})
}

func (h *ContentHandler) GetProfile(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteGetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}

func (h *ContentHandler) ListExperience(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteListExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"experience": output})
}

func (h *ContentHandler) ListResearch(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteListResearch(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"research": output})
}

func (h *ContentHandler) ListProjects(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteListProjects(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": ToProjectDTOs(output)})
}

func (h *ContentHandler) GetProject(c *gin.Context) {
	slug := c.Param("slug")
	output, err := h.portfolioUseCase.ExecuteGetProject(c.Request.Context(), slug)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(output))
}

func (h *ContentHandler) ListSkills(c *gin.Context) {
	output, err := h.portfolioUseCase.ExecuteListSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output)
}
