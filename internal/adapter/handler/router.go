package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/callsight/callsight/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	agentHandler *Agent
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, agentHandler *Agent) *Router {
	return &Router{
		cfg:          cfg,
		agentHandler: agentHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")
	rt.setupAgentRoutes(v1)
}

// setupAgentRoutes configures transcript analysis routes
func (rt *Router) setupAgentRoutes(g *echo.Group) {
	agentGroup := g.Group("/agent")

	agentGroup.POST("/analyze", rt.agentHandler.Analyze)
	agentGroup.POST("/quick-summary", rt.agentHandler.QuickSummary)
	agentGroup.GET("/interactions", rt.agentHandler.ListInteractions)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
