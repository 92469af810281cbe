package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"github.com/piresc/ecotrack/services/transactions"
)

// SyncMerchant drains the upstream cursor for one merchant, stores every item
// and publishes a summary event. Nothing is stored unless the whole drain
// succeeded. Once the drain succeeded the result is always returned; items
// that could not be stored carry a failed outcome.
func (uc *transactionUC) SyncMerchant(ctx context.Context, externalUserID, merchantID string) (*models.SyncResult, error) {
	if externalUserID == "" || merchantID == "" {
		return nil, transactions.ErrMissingSyncTarget
	}

	// insert, publish and unlock outlive the caller and the drain budget
	detached := context.WithoutCancel(ctx)

	ctx, cancel := context.WithTimeout(ctx, uc.syncTimeout)
	defer cancel()

	syncID := uuid.NewString()
	acquired, err := uc.lockRepo.AcquireSyncLock(ctx, externalUserID, merchantID, syncID, uc.lockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, transactions.ErrSyncInProgress
	}
	defer func() {
		// release even when the drain ran out of time
		if err := uc.lockRepo.ReleaseSyncLock(detached, externalUserID, merchantID, syncID); err != nil {
			logger.WarnCtx(ctx, "Failed to release sync lock",
				logger.String("sync_id", syncID),
				logger.Err(err))
		}
	}()

	logger.InfoCtx(ctx, "Received NEW_TRANSACTIONS_AVAILABLE webhook",
		logger.String("sync_id", syncID),
		logger.String("merchant_id", merchantID),
		logger.String("external_user_id", externalUserID))

	txns, pages, err := uc.drain(ctx, externalUserID, merchantID)
	if err != nil {
		logger.ErrorCtx(ctx, "Transaction drain failed",
			logger.String("sync_id", syncID),
			logger.Int("pages", pages),
			logger.Err(err))
		return nil, err
	}

	insertCtx, cancelInsert := context.WithTimeout(detached, uc.insertTimeout)
	defer cancelInsert()
	outcomes := uc.repo.InsertTransactions(insertCtx, txns)

	result := &models.SyncResult{
		SyncID:         syncID,
		ExternalUserID: externalUserID,
		MerchantID:     merchantID,
		Pages:          pages,
		Fetched:        len(txns),
		Outcomes:       outcomes,
	}

	for _, o := range outcomes {
		if o.Status == models.InsertStatusFailed {
			logger.WarnCtx(detached, "Transaction not stored",
				logger.String("sync_id", syncID),
				logger.String("transaction_id", o.TransactionID),
				logger.String("error", o.Error))
		}
	}

	uc.publishSynced(detached, result)

	logger.InfoCtx(detached, "Synced transactions",
		logger.String("sync_id", syncID),
		logger.String("merchant_id", merchantID),
		logger.Int("fetched", result.Fetched),
		logger.Int("inserted", result.Count(models.InsertStatusInserted)),
		logger.Int("duplicates", result.Count(models.InsertStatusDuplicate)),
		logger.Int("failed", result.Count(models.InsertStatusFailed)))

	return result, nil
}

// drain follows next_cursor until the upstream stops returning one. Pages are
// fetched strictly in order.
func (uc *transactionUC) drain(ctx context.Context, externalUserID, merchantID string) ([]models.UpstreamTransaction, int, error) {
	return uc.drainPages(ctx, models.SyncRequest{
		ExternalUserID: externalUserID,
		MerchantID:     merchantID,
	})
}

func (uc *transactionUC) drainPages(ctx context.Context, req models.SyncRequest) ([]models.UpstreamTransaction, int, error) {
	var all []models.UpstreamTransaction
	pages := 0

	for {
		page, err := nrpkg.WithSegmentAndReturn(ctx, "knot.transactions.sync", func() (*models.SyncPage, error) {
			return uc.knotGW.SyncTransactions(ctx, req)
		})
		if err != nil {
			return nil, pages, fmt.Errorf("page %d: %w", pages+1, err)
		}
		pages++
		all = append(all, page.Transactions...)

		if !page.HasMore() {
			return all, pages, nil
		}
		if pages >= uc.maxPages {
			return nil, pages, fmt.Errorf("%w: stopped after %d pages", transactions.ErrPageBudgetExceeded, pages)
		}
		req.Cursor = page.NextCursor
	}
}

func (uc *transactionUC) publishSynced(ctx context.Context, result *models.SyncResult) {
	event := models.TransactionsSyncedEvent{
		SyncID:         result.SyncID,
		ExternalUserID: result.ExternalUserID,
		MerchantID:     result.MerchantID,
		Fetched:        result.Fetched,
		Inserted:       result.Count(models.InsertStatusInserted),
		Duplicates:     result.Count(models.InsertStatusDuplicate),
		Failed:         result.Count(models.InsertStatusFailed),
		SyncedAt:       uc.now().UTC(),
	}

	if err := uc.eventGW.PublishTransactionsSynced(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish transactions synced event",
			logger.String("sync_id", result.SyncID),
			logger.Err(err))
	}
}
