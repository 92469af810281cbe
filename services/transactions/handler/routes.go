package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/ecotrack/services/transactions"
	httpHandler "github.com/piresc/ecotrack/services/transactions/handler/http"
)

// Handler combines all handlers for the transactions service
type Handler struct {
	transactionsHTTP *httpHandler.TransactionsHandler
}

// NewHandler creates a new combined handler
func NewHandler(transactionUC transactions.TransactionUC) *Handler {
	return &Handler{
		transactionsHTTP: httpHandler.NewTransactionsHandler(transactionUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/webhook", h.transactionsHTTP.Webhook)
	api.GET("/finance", h.transactionsHTTP.Finance)
	api.GET("/transactions", h.transactionsHTTP.Transactions)
	api.GET("/session", h.transactionsHTTP.Session)
	api.POST("/sync-transactions", h.transactionsHTTP.SyncTransactions)
}
