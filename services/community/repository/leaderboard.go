package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
)

// LeaderboardRepo implements community.LeaderboardRepo on Postgres
type LeaderboardRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLeaderboardRepo creates a new leaderboard repository
func NewLeaderboardRepo(cfg *models.Config, db *sqlx.DB) *LeaderboardRepo {
	return &LeaderboardRepo{
		cfg: cfg,
		db:  db,
	}
}

func (r *LeaderboardRepo) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	query := `
		SELECT user_id, total_score AS score
		FROM leaderboard
		ORDER BY total_score DESC, user_id
	`

	entries := []models.LeaderboardEntry{}
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "leaderboard", "SELECT", func() error {
		return r.db.SelectContext(ctx, &entries, query)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return entries, nil
}

// productScoreRow mirrors purchases, where store and brand are nullable
type productScoreRow struct {
	ProductName string         `db:"product_name"`
	Store       sql.NullString `db:"store"`
	Brand       sql.NullString `db:"brand"`
	Score       float64        `db:"score"`
}

// GetProductScores adds the store and brand sustainability scores of each
// purchase. A missing store or brand, or one without a score, counts as zero.
func (r *LeaderboardRepo) GetProductScores(ctx context.Context, userID string) ([]models.ProductScore, error) {
	query := `
		SELECT p.product_name, p.store, p.brand,
			COALESCE(s.sustainability_score, 0) + COALESCE(b.sustainability_score, 0) AS score
		FROM purchases p
		LEFT JOIN store_emissions s ON s.name = p.store
		LEFT JOIN brand_emissions b ON b.name = p.brand
		WHERE p.user_id = $1
		ORDER BY p.id
	`

	var rows []productScoreRow
	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "purchases", "SELECT", func() error {
		return r.db.SelectContext(ctx, &rows, query, userID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get product scores for user %s: %w", userID, err)
	}

	scores := make([]models.ProductScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, models.ProductScore{
			ProductName: row.ProductName,
			Store:       row.Store.String,
			Brand:       row.Brand.String,
			Score:       row.Score,
		})
	}

	return scores, nil
}
