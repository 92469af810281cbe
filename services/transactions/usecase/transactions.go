package usecase

import (
	"context"
	"encoding/json"

	"github.com/piresc/ecotrack/internal/pkg/models"
)

func (uc *transactionUC) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	return uc.repo.ListTransactions(ctx)
}

func (uc *transactionUC) CreateSession(ctx context.Context) (json.RawMessage, error) {
	return uc.knotGW.CreateSession(ctx)
}

// SyncTransactionsPage forwards a single-page sync request as given
func (uc *transactionUC) SyncTransactionsPage(ctx context.Context, req models.SyncPageRequest) (json.RawMessage, error) {
	return uc.knotGW.ForwardSync(ctx, models.SyncRequest{
		MerchantAccountID: req.MerchantAccountID,
		Cursor:            req.Cursor,
	})
}
