package transactions

import (
	"context"
	"encoding/json"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/ecotrack/services/transactions TransactionUC

// TransactionUC defines the transactions business logic
type TransactionUC interface {
	// SyncMerchant drains every upstream page for the merchant and stores the items
	SyncMerchant(ctx context.Context, externalUserID, merchantID string) (*models.SyncResult, error)
	GetFinanceSummary(ctx context.Context) (*models.FinanceSummary, error)
	ListTransactions(ctx context.Context) ([]models.TransactionRecord, error)

	// passthrough
	CreateSession(ctx context.Context) (json.RawMessage, error)
	SyncTransactionsPage(ctx context.Context, req models.SyncPageRequest) (json.RawMessage, error)
}
