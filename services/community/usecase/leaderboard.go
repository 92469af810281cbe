package usecase

import (
	"context"
	"sort"

	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/internal/utils"
)

func (uc *communityUC) GetLeaderboard(ctx context.Context, userID string) (*models.LeaderboardResponse, error) {
	if userID == "" {
		userID = DefaultUserID
	}

	entries, err := uc.leaderboardRepo.GetLeaderboard(ctx)
	if err != nil {
		return nil, err
	}

	scores, err := uc.leaderboardRepo.GetProductScores(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &models.LeaderboardResponse{
		Leaderboard:     entries,
		UserID:          userID,
		HarmfulProducts: mostHarmful(scores, harmfulProductLimit),
	}, nil
}

// mostHarmful rounds every score to two decimals and keeps the lowest n.
// Equal scores keep purchase order.
func mostHarmful(scores []models.ProductScore, n int) []models.ProductScore {
	ranked := make([]models.ProductScore, len(scores))
	for i, s := range scores {
		s.Score = utils.RoundTo(s.Score, 2)
		ranked[i] = s
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
