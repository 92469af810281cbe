package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/services/community"
	httpHandler "github.com/piresc/ecotrack/services/community/handler/http"
)

// Handler combines all handlers for the community service
type Handler struct {
	communityHTTP *httpHandler.CommunityHandler
}

// NewHandler creates a new combined handler
func NewHandler(communityUC community.CommunityUC) *Handler {
	return &Handler{
		communityHTTP: httpHandler.NewCommunityHandler(communityUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/leaderboard", h.communityHTTP.Leaderboard)
	api.GET("/places", h.communityHTTP.Places)
}
