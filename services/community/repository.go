package community

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ecotrack/services/community LeaderboardRepo,PlacesRepo

// LeaderboardRepo reads community scores
type LeaderboardRepo interface {
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	// GetProductScores returns every purchase of the user with its combined
	// store and brand score, unrounded and in purchase order
	GetProductScores(ctx context.Context, userID string) ([]models.ProductScore, error)
}

// PlacesRepo indexes eco-friendly places by location
type PlacesRepo interface {
	SavePlaces(ctx context.Context, places []models.Place) error
	// FindPlacesWithin returns places within radiusKm of the point, nearest first
	FindPlacesWithin(ctx context.Context, point models.PlacesQuery) ([]models.Place, error)
}
