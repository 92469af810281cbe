package insights

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ecotrack/services/insights ModelGW,FinanceGW

// ModelGW generates text from a prompt
type ModelGW interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// FinanceGW provides the live spending summary
type FinanceGW interface {
	GetFinanceSummary(ctx context.Context) (*models.FinanceSummary, error)
}
