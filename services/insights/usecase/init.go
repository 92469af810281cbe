package usecase

import (
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/insights"
)

type insightsUC struct {
	cfg         *models.Config
	fixtureRepo insights.FixtureRepo
	modelGW     insights.ModelGW
	financeGW   insights.FinanceGW
}

// NewInsightsUC creates the insights use case. modelGW may be nil when no
// API key is configured.
func NewInsightsUC(cfg *models.Config, fixtureRepo insights.FixtureRepo, modelGW insights.ModelGW, financeGW insights.FinanceGW) insights.InsightsUC {
	return &insightsUC{
		cfg:         cfg,
		fixtureRepo: fixtureRepo,
		modelGW:     modelGW,
		financeGW:   financeGW,
	}
}
