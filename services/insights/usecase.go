package insights

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ecotrack/services/insights InsightsUC

// InsightsUC defines the assistant and dashboard logic
type InsightsUC interface {
	// Chat always answers with text. Model failures become a fallback answer.
	Chat(ctx context.Context, question string) (string, error)
	GetDashboard(ctx context.Context) (*models.Dashboard, error)
}
