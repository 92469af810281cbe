package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/services/insights"
	httpHandler "github.com/piresc/ecotrack/services/insights/handler/http"
)

// Handler combines all handlers for the insights service
type Handler struct {
	insightsHTTP *httpHandler.InsightsHandler
}

// NewHandler creates a new combined handler
func NewHandler(insightsUC insights.InsightsUC) *Handler {
	return &Handler{
		insightsHTTP: httpHandler.NewInsightsHandler(insightsUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/chat", h.insightsHTTP.Chat)
	api.GET("/dashboard", h.insightsHTTP.Dashboard)
}
