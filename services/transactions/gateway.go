package transactions

import (
	"context"
	"encoding/json"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/ecotrack/services/transactions KnotGW,EventGW

// KnotGW talks to the transaction-aggregation API
type KnotGW interface {
	SyncTransactions(ctx context.Context, req models.SyncRequest) (*models.SyncPage, error)
	ForwardSync(ctx context.Context, req models.SyncRequest) (json.RawMessage, error)
	CreateSession(ctx context.Context) (json.RawMessage, error)
}

// EventGW publishes transaction events
type EventGW interface {
	PublishTransactionsSynced(ctx context.Context, event models.TransactionsSyncedEvent) error
}
