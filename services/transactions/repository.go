package transactions

import (
	"context"
	"time"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ecotrack/services/transactions TransactionRepo,SyncLockRepo

// TransactionRepo persists upstream transactions
type TransactionRepo interface {
	// InsertTransactions stores every item and reports one outcome per item,
	// in input order. A failing item does not stop the others.
	InsertTransactions(ctx context.Context, txns []models.UpstreamTransaction) []models.InsertOutcome
	ListTransactions(ctx context.Context) ([]models.TransactionRecord, error)
	ListSummaryRows(ctx context.Context) ([]models.TransactionRecord, error)
}

// SyncLockRepo serializes drains of the same merchant
type SyncLockRepo interface {
	AcquireSyncLock(ctx context.Context, externalUserID, merchantID, token string, ttl time.Duration) (bool, error)
	ReleaseSyncLock(ctx context.Context, externalUserID, merchantID, token string) error
}
