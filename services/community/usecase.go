package community

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ecotrack/services/community CommunityUC

// CommunityUC defines the leaderboard and map logic
type CommunityUC interface {
	GetLeaderboard(ctx context.Context, userID string) (*models.LeaderboardResponse, error)
	FindPlaces(ctx context.Context, query models.PlacesQuery) ([]models.NearbyPlace, error)
	// SeedPlaces loads the sample places into the location index
	SeedPlaces(ctx context.Context) error
	// DefaultPlacesQuery returns the configured map center and radius
	DefaultPlacesQuery() models.PlacesQuery
}
