package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"github.com/piresc/ecotrack/internal/utils"
	"github.com/piresc/ecotrack/services/insights"
)

// InsightsHandler handles HTTP requests for the assistant and the dashboard
type InsightsHandler struct {
	insightsUC insights.InsightsUC
}

// NewInsightsHandler creates a new insights HTTP handler
func NewInsightsHandler(insightsUC insights.InsightsUC) *InsightsHandler {
	return &InsightsHandler{
		insightsUC: insightsUC,
	}
}

// Chat answers a sustainability question about the user's data
func (h *InsightsHandler) Chat(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Insights.Chat")

	var req models.ChatRequest
	if err := c.Bind(&req); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	answer, err := h.insightsUC.Chat(c.Request().Context(), req.Question)
	if err != nil {
		if errors.Is(err, insights.ErrEmptyQuestion) {
			return utils.BadRequestResponse(c, "Question is required")
		}
		logger.Error("Failed to answer question", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.InternalServerErrorResponse(c)
	}

	return c.JSON(http.StatusOK, models.ChatResponse{Answer: answer})
}

// Dashboard returns the home view data with the live finance summary
func (h *InsightsHandler) Dashboard(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Insights.Dashboard")

	dashboard, err := h.insightsUC.GetDashboard(c.Request().Context())
	if err != nil {
		logger.Error("Error building dashboard", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DatabaseErrorResponse(c)
	}

	return c.JSON(http.StatusOK, dashboard)
}
