package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/sales-copilot/internal/adapter/dto/common"

	// registers the swagger spec served under /swagger
	_ "github.com/johnquangdev/sales-copilot/docs"
)

// Router holds all handlers
type Router struct {
	analysisHandler *Analysis
	feedHandler     *Feed
}

// NewRouter creates a new router with all handlers
func NewRouter(analysisHandler *Analysis, feedHandler *Feed) *Router {
	return &Router{
		analysisHandler: analysisHandler,
		feedHandler:     feedHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoints
	e.GET("/", rt.healthCheck)
	e.GET("/health", rt.healthCheck)

	e.POST("/analyze_transcript", rt.analysisHandler.AnalyzeTranscript)
	e.POST("/generate_icebreaker", rt.analysisHandler.GenerateIcebreaker)
	e.GET("/feed", rt.feedHandler.GetFeed)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       / [get]
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, common.HealthResponse{Status: "ok"})
}
