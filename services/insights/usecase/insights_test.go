package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/insights"
	"github.com/piresc/ecotrack/services/insights/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleFixtures = &models.AssistantFixtures{
	Transactions: json.RawMessage(`[{"merchant":"Whole Foods","total":42.1}]`),
	Brands:       json.RawMessage(`[{"name":"Oatly"}]`),
	Stores:       json.RawMessage(`[]`),
}

type insightsMocks struct {
	fixtures *mocks.MockFixtureRepo
	model    *mocks.MockModelGW
	finance  *mocks.MockFinanceGW
}

func newTestUC(t *testing.T, apiKey string) (insights.InsightsUC, insightsMocks) {
	ctrl := gomock.NewController(t)
	m := insightsMocks{
		fixtures: mocks.NewMockFixtureRepo(ctrl),
		model:    mocks.NewMockModelGW(ctrl),
		finance:  mocks.NewMockFinanceGW(ctrl),
	}
	cfg := &models.Config{Gemini: models.GeminiConfig{APIKey: apiKey}}
	return NewInsightsUC(cfg, m.fixtures, m.model, m.finance), m
}

func TestChat_Answer(t *testing.T) {
	uc, m := newTestUC(t, "key")

	m.fixtures.EXPECT().LoadFixtures(gomock.Any()).Return(sampleFixtures, nil)
	m.model.EXPECT().GenerateText(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Please respond in plain text only, with no Markdown formatting or asterisks.")
			assert.Contains(t, prompt, "\"merchant\": \"Whole Foods\"")
			assert.True(t, strings.Contains(prompt, "How green is my spending?"))
			return "Mostly green.", nil
		})

	answer, err := uc.Chat(context.Background(), "  How green is my spending?  ")

	require.NoError(t, err)
	assert.Equal(t, "Mostly green.", answer)
}

func TestChat_Fallbacks(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		uc, _ := newTestUC(t, "")

		answer, err := uc.Chat(context.Background(), "hi")

		require.NoError(t, err)
		assert.Equal(t, AnswerMissingAPIKey, answer)
	})

	t.Run("model error", func(t *testing.T) {
		uc, m := newTestUC(t, "key")
		m.fixtures.EXPECT().LoadFixtures(gomock.Any()).Return(sampleFixtures, nil)
		m.model.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("", errors.New("403 PERMISSION_DENIED"))

		answer, err := uc.Chat(context.Background(), "hi")

		require.NoError(t, err)
		assert.Equal(t, AnswerModelError, answer)
	})

	t.Run("empty text", func(t *testing.T) {
		uc, m := newTestUC(t, "key")
		m.fixtures.EXPECT().LoadFixtures(gomock.Any()).Return(sampleFixtures, nil)
		m.model.EXPECT().GenerateText(gomock.Any(), gomock.Any()).Return("  ", nil)

		answer, err := uc.Chat(context.Background(), "hi")

		require.NoError(t, err)
		assert.Equal(t, AnswerEmpty, answer)
	})
}

func TestChat_EmptyQuestion(t *testing.T) {
	uc, _ := newTestUC(t, "key")

	_, err := uc.Chat(context.Background(), "   ")

	assert.ErrorIs(t, err, insights.ErrEmptyQuestion)
}

func TestChat_FixtureError(t *testing.T) {
	uc, m := newTestUC(t, "key")
	m.fixtures.EXPECT().LoadFixtures(gomock.Any()).Return(nil, errors.New("fixture store.json is not valid JSON"))

	_, err := uc.Chat(context.Background(), "hi")

	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(&models.AssistantFixtures{
		Transactions: json.RawMessage(`[{"a":1}]`),
	}, "Why?")

	assert.Contains(t, prompt, "Below is my transaction data in JSON format:\n  [\n  {\n    \"a\": 1\n  }\n]")
	assert.Contains(t, prompt, "Below is my brand data in JSON format:\n  []")
	assert.Contains(t, prompt, "Below is my store data in JSON format:\n  []")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(prompt), "Why?"))
}

func TestGetDashboard(t *testing.T) {
	uc, m := newTestUC(t, "")
	m.finance.EXPECT().GetFinanceSummary(gomock.Any()).Return(&models.FinanceSummary{
		TotalTransactions:    1,
		TotalSpent:           decimal.RequireFromString("12.5"),
		TransactionsByStatus: map[string]int{"COMPLETED": 1},
	}, nil)

	dashboard, err := uc.GetDashboard(context.Background())

	require.NoError(t, err)
	require.Len(t, dashboard.Metrics, 2)
	assert.Equal(t, "Carbon Footprint", dashboard.Metrics[0].Title)
	require.Len(t, dashboard.Investments, 2)
	assert.Equal(t, "ICLN", dashboard.Investments[0].Ticker)
	assert.Len(t, dashboard.Tips, 2)
	require.Len(t, dashboard.Chart, 6)
	assert.Equal(t, models.ScorePoint{Name: "Jun", Score: 88}, dashboard.Chart[5])
	assert.Equal(t, 1, dashboard.Finance.TotalTransactions)
}

func TestGetDashboard_FinanceError(t *testing.T) {
	uc, m := newTestUC(t, "")
	m.finance.EXPECT().GetFinanceSummary(gomock.Any()).Return(nil, errors.New("db down"))

	dashboard, err := uc.GetDashboard(context.Background())

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}
