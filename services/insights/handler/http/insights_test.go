package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/insights"
	"github.com/piresc/ecotrack/services/insights/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestChat_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockInsightsUC(ctrl)
	handler := NewInsightsHandler(mockUC)
	mockUC.EXPECT().Chat(gomock.Any(), "Which store is greenest?").Return("Green Grocer scores highest.", nil)

	c, rec := newContext(http.MethodPost, "/api/chat", `{"question":"Which store is greenest?"}`)

	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"answer":"Green Grocer scores highest."}`, rec.Body.String())
}

func TestChat_EmptyQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockInsightsUC(ctrl)
	handler := NewInsightsHandler(mockUC)
	mockUC.EXPECT().Chat(gomock.Any(), "").Return("", insights.ErrEmptyQuestion)

	c, rec := newContext(http.MethodPost, "/api/chat", `{}`)

	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Question is required"}`, rec.Body.String())
}

func TestChat_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewInsightsHandler(mocks.NewMockInsightsUC(ctrl))
	c, rec := newContext(http.MethodPost, "/api/chat", `{"question":`)

	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_InternalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockInsightsUC(ctrl)
	handler := NewInsightsHandler(mockUC)
	mockUC.EXPECT().Chat(gomock.Any(), "hi").Return("", errors.New("permission denied"))

	c, rec := newContext(http.MethodPost, "/api/chat", `{"question":"hi"}`)

	require.NoError(t, handler.Chat(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestDashboard_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockInsightsUC(ctrl)
	handler := NewInsightsHandler(mockUC)
	mockUC.EXPECT().GetDashboard(gomock.Any()).Return(&models.Dashboard{
		Metrics: []models.Metric{{Title: "Carbon Footprint", Value: "2.5 tons", Change: "-12", Color: "#4ade80"}},
		Chart:   []models.ScorePoint{{Name: "Jan", Score: 65}},
		Finance: models.FinanceSummary{
			TotalTransactions:    1,
			TotalSpent:           decimal.RequireFromString("9.99"),
			TransactionsByStatus: map[string]int{"COMPLETED": 1},
		},
	}, nil)

	c, rec := newContext(http.MethodGet, "/api/dashboard", "")

	require.NoError(t, handler.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"metrics":[{"title":"Carbon Footprint","value":"2.5 tons","change":"-12","color":"#4ade80"}],
		"investments":null,
		"tips":null,
		"chart":[{"name":"Jan","score":65}],
		"finance":{"totalTransactions":1,"totalSpent":9.99,"transactionsByStatus":{"COMPLETED":1}}
	}`, rec.Body.String())
}

func TestDashboard_DatabaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockInsightsUC(ctrl)
	handler := NewInsightsHandler(mockUC)
	mockUC.EXPECT().GetDashboard(gomock.Any()).Return(nil, errors.New("db down"))

	c, rec := newContext(http.MethodGet, "/api/dashboard", "")

	require.NoError(t, handler.Dashboard(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Database error"}`, rec.Body.String())
}
