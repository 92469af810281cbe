package usecase

import (
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/community"
)

const (
	// DefaultUserID is used when the leaderboard is requested without a user
	DefaultUserID = "user_001"

	harmfulProductLimit = 5
	defaultRadiusKm     = 5.0
)

type communityUC struct {
	cfg             *models.Config
	leaderboardRepo community.LeaderboardRepo
	placesRepo      community.PlacesRepo
}

// NewCommunityUC creates the community use case
func NewCommunityUC(cfg *models.Config, leaderboardRepo community.LeaderboardRepo, placesRepo community.PlacesRepo) community.CommunityUC {
	return &communityUC{
		cfg:             cfg,
		leaderboardRepo: leaderboardRepo,
		placesRepo:      placesRepo,
	}
}
