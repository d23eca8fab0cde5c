package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/i-shreyansh/portfolio/adapters/view"
	"github.com/i-shreyansh/portfolio/pkg/logger"
)

type Handlers struct {
	Page      *PageHandler
	Content   *ContentHandler
	ScrollSpy *ScrollSpyHandler
	RSS       *RSSHandler
}

func NewRouter(hs Handlers, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	router.GET("/", hs.Page.GetPage)
	router.GET(view.ScriptPath, hs.Page.GetScript)
	router.GET("/feed.xml", hs.RSS.GenerateRSS)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
		api.GET("/sections", hs.Content.ListSections)
		api.GET("/portfolio", hs.Content.GetPortfolio)
		api.GET("/profile", hs.Content.GetProfile)
		api.GET("/experience", hs.Content.ListExperience)
		api.GET("/research", hs.Content.ListResearch)
		api.GET("/skills", hs.Content.ListSkills)

		projects := api.Group("/projects")
		{
			projects.GET("", hs.Content.ListProjects)
			projects.GET("/:slug", hs.Content.GetProject)
		}

		api.POST("/scrollspy", hs.ScrollSpy.DetectSection)
	}

	return router
}
