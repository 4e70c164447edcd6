package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-action-assistant/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-action-assistant/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg          *config.Config
	aiController *AIController
	now          func() time.Time
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, aiController *AIController) *Router {
	return &Router{
		cfg:          cfg,
		aiController: aiController,
		now:          time.Now,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	api.POST("/upload", rt.aiController.Upload)
	api.GET("/transcribe/:filename", rt.aiController.Transcribe)
	api.POST("/extract", rt.aiController.Extract)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// healthCheck returns health status
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:    "healthy",
		Timestamp: rt.now().UTC().Format(time.RFC3339),
	}
	if rt.cfg != nil {
		resp.Version = rt.cfg.Server.Version
		resp.Environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, resp)
}
