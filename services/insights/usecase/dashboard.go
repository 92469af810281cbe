package usecase

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

var (
	dashboardMetrics = []models.Metric{
		{Title: "Carbon Footprint", Value: "2.5 tons", Change: "-12", Color: "#4ade80"},
		{Title: "Investment Credit", Value: "250 pts", Change: "+25", Color: "#fbbf24"},
	}

	dashboardInvestments = []models.Investment{
		{
			Name:                 "Green Energy Fund",
			Ticker:               "ICLN",
			Price:                78.42,
			MarketCap:            "$2.8B",
			SustainabilityRating: 92,
			Sector:               "Renewable Energy",
			PotentialImprovement: 12,
		},
		{
			Name:                 "Sustainable Tech Corp",
			Ticker:               "TAN",
			Price:                145.67,
			MarketCap:            "$4.2B",
			SustainabilityRating: 88,
			Sector:               "Clean Technology",
			PotentialImprovement: 15,
		},
	}

	dashboardTips = []models.Tip{
		{
			Title: "Switch to Renewable Energy",
			Text:  "Consider switching to a renewable energy provider to reduce your carbon footprint by up to 30%.",
		},
		{
			Title: "Reduce Food Waste",
			Text:  "Plan your meals and use leftovers creatively to minimize food waste and save money.",
		},
	}

	dashboardChart = []models.ScorePoint{
		{Name: "Jan", Score: 65},
		{Name: "Feb", Score: 72},
		{Name: "Mar", Score: 68},
		{Name: "Apr", Score: 78},
		{Name: "May", Score: 82},
		{Name: "Jun", Score: 88},
	}
)

func (uc *insightsUC) GetDashboard(ctx context.Context) (*models.Dashboard, error) {
	summary, err := uc.financeGW.GetFinanceSummary(ctx)
	if err != nil {
		return nil, err
	}

	return &models.Dashboard{
		Metrics:     dashboardMetrics,
		Investments: dashboardInvestments,
		Tips:        dashboardTips,
		Chart:       dashboardChart,
		Finance:     *summary,
	}, nil
}
