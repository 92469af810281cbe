package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"github.com/piresc/ecotrack/internal/utils"
	"github.com/piresc/ecotrack/services/transactions"
)

// TransactionsHandler handles HTTP requests for transaction ingestion and reporting
type TransactionsHandler struct {
	transactionUC transactions.TransactionUC
}

// NewTransactionsHandler creates a new transactions HTTP handler
func NewTransactionsHandler(transactionUC transactions.TransactionUC) *TransactionsHandler {
	return &TransactionsHandler{
		transactionUC: transactionUC,
	}
}

// Webhook receives upstream notifications and drains new transactions
func (h *TransactionsHandler) Webhook(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Webhook")

	var event models.WebhookEvent
	if err := c.Bind(&event); err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if event.Event != models.EventNewTransactionsAvailable {
		logger.Info("Ignoring webhook event",
			logger.String("event", event.Event))
		return c.JSON(http.StatusOK, models.WebhookResponse{Message: "Webhook received"})
	}

	nrpkg.AddTransactionAttribute(txn, "merchant_id", event.MerchantID())

	result, err := h.transactionUC.SyncMerchant(c.Request().Context(), event.ExternalUserID, event.MerchantID())
	if err != nil {
		logger.Error("Failed to sync transactions",
			logger.String("merchant_id", event.MerchantID()),
			logger.String("external_user_id", event.ExternalUserID),
			logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return renderError(c, err)
	}

	count := result.Fetched
	return c.JSON(http.StatusOK, models.WebhookResponse{
		Message: "Transactions synced",
		Count:   &count,
	})
}

// Finance returns the spending summary over every stored transaction
func (h *TransactionsHandler) Finance(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Finance")

	summary, err := h.transactionUC.GetFinanceSummary(c.Request().Context())
	if err != nil {
		logger.Error("Error fetching finance data", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DatabaseErrorResponse(c)
	}

	return c.JSON(http.StatusOK, summary)
}

// Transactions lists stored rows, newest first
func (h *TransactionsHandler) Transactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.List")

	rows, err := h.transactionUC.ListTransactions(c.Request().Context())
	if err != nil {
		logger.Error("Error fetching transactions", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return utils.DatabaseErrorResponse(c)
	}
	if rows == nil {
		rows = []models.TransactionRecord{}
	}

	return c.JSON(http.StatusOK, rows)
}

// Session creates a transaction-link session upstream
func (h *TransactionsHandler) Session(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.Session")

	body, err := h.transactionUC.CreateSession(c.Request().Context())
	if err != nil {
		logger.Error("Error creating session", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return renderError(c, err)
	}

	return c.JSONBlob(http.StatusOK, body)
}

// SyncTransactions forwards one sync page request upstream
func (h *TransactionsHandler) SyncTransactions(c echo.Context) error {
	txn := nrpkg.FromEchoContext(c)
	nrpkg.SetTransactionName(txn, "Transactions.SyncPage")

	// UseNumber keeps merchantAccountId exactly as sent
	var req models.SyncPageRequest
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		nrpkg.NoticeTransactionError(txn, err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	body, err := h.transactionUC.SyncTransactionsPage(c.Request().Context(), req)
	if err != nil {
		logger.Error("Error syncing transactions", logger.Err(err))
		nrpkg.NoticeTransactionError(txn, err)
		return renderError(c, err)
	}

	return c.JSONBlob(http.StatusOK, body)
}
