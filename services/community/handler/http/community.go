package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"github.com/piresc/ecotrack/internal/utils"
	"github.com/piresc/ecotrack/services/community"
)

// CommunityHandler handles HTTP requests for the leaderboard and map
type CommunityHandler struct {
	communityUC community.CommunityUC
}

// NewCommunityHandler creates a new community HTTP handler
func NewCommunityHandler(communityUC community.CommunityUC) *CommunityHandler {
	return &CommunityHandler{
		communityUC: communityUC,
	}
}

// Leaderboard returns the community ranking and the user's most harmful purchases
func (h *CommunityHandler) Leaderboard(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Community.Leaderboard")

	userID := c.QueryParam("user_id")

	resp, err := h.communityUC.GetLeaderboard(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Error fetching leaderboard",
			logger.String("user_id", userID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DatabaseErrorResponse(c)
	}

	return c.JSON(http.StatusOK, resp)
}

// Places returns eco-friendly places around a point
func (h *CommunityHandler) Places(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Community.Places")

	query := h.communityUC.DefaultPlacesQuery()
	params := []struct {
		name   string
		target *float64
	}{
		{"lat", &query.Latitude},
		{"lng", &query.Longitude},
		{"radius_km", &query.RadiusKm},
	}
	for _, p := range params {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid "+p.name)
		}
		*p.target = v
	}

	places, err := h.communityUC.FindPlaces(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, community.ErrInvalidCoordinates) {
			return utils.BadRequestResponse(c, "Invalid coordinates")
		}
		logger.Error("Error searching places", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c)
	}
	if places == nil {
		places = []models.NearbyPlace{}
	}

	return c.JSON(http.StatusOK, places)
}
