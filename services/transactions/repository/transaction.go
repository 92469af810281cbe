package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
	"github.com/piresc/ecotrack/services/transactions"
)

const insertTransactionQuery = `
	INSERT INTO transactions (
		transaction_id, external_id, datetime, url, order_status,
		payment_methods, price, products, merchant_id, merchant_name, raw_data
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (transaction_id) DO NOTHING
`

const selectTransactionsQuery = `
	SELECT id, transaction_id, external_id, datetime, url, order_status,
		payment_methods, price, products, merchant_id, merchant_name, raw_data
	FROM transactions
	ORDER BY id DESC
`

const selectSummaryRowsQuery = `
	SELECT id, transaction_id, order_status, price
	FROM transactions
`

type TransactionRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTransactionRepo(cfg *models.Config, db *sqlx.DB) *TransactionRepo {
	return &TransactionRepo{
		cfg: cfg,
		db:  db,
	}
}

// InsertTransactions inserts items one statement at a time so a bad item
// cannot abort its siblings. Repeated ids are reported as duplicates. When ctx
// ends mid-batch the rest are reported as failed without being attempted.
func (r *TransactionRepo) InsertTransactions(ctx context.Context, txns []models.UpstreamTransaction) []models.InsertOutcome {
	outcomes := make([]models.InsertOutcome, 0, len(txns))
	attempted := 0

	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "transactions", "INSERT", func() error {
		for i, txn := range txns {
			if err := ctx.Err(); err != nil {
				outcomes = append(outcomes, notAttempted(txns[i:], err)...)
				return err
			}
			outcomes = append(outcomes, r.insertOne(ctx, txn))
			attempted++
		}
		return nil
	})
	if err != nil {
		logger.WarnCtx(ctx, "Insert batch interrupted",
			logger.Int("attempted", attempted),
			logger.Int("total", len(txns)),
			logger.Err(err))
	}

	return outcomes
}

func notAttempted(txns []models.UpstreamTransaction, cause error) []models.InsertOutcome {
	outcomes := make([]models.InsertOutcome, 0, len(txns))
	for _, txn := range txns {
		outcomes = append(outcomes, models.InsertOutcome{
			TransactionID: txn.ID.String(),
			Status:        models.InsertStatusFailed,
			Error:         fmt.Sprintf("not attempted: %v", cause),
		})
	}
	return outcomes
}

func (r *TransactionRepo) insertOne(ctx context.Context, txn models.UpstreamTransaction) models.InsertOutcome {
	outcome := models.InsertOutcome{TransactionID: txn.ID.String()}

	if txn.ID == "" {
		outcome.Status = models.InsertStatusFailed
		outcome.Error = transactions.ErrMissingTransactionID.Error()
		return outcome
	}

	var merchantID, merchantName *string
	if txn.Merchant != nil {
		merchantID = nullIfEmpty(txn.Merchant.ID.String())
		merchantName = nullIfEmpty(txn.Merchant.Name)
	}

	res, err := r.db.ExecContext(ctx, insertTransactionQuery,
		txn.ID.String(),
		nullIfEmptyPtr(txn.ExternalID),
		nullIfEmptyPtr(txn.Datetime),
		nullIfEmptyPtr(txn.URL),
		nullIfEmptyPtr(txn.OrderStatus),
		jsonOrDefault(txn.PaymentMethods, "[]"),
		jsonOrDefault(txn.Price, "{}"),
		jsonOrDefault(txn.Products, "[]"),
		merchantID,
		merchantName,
		rawPayload(txn),
	)
	if err != nil {
		logger.ErrorCtx(ctx, "Error inserting transaction",
			logger.String("transaction_id", outcome.TransactionID),
			logger.Err(err))
		outcome.Status = models.InsertStatusFailed
		outcome.Error = err.Error()
		return outcome
	}

	affected, err := res.RowsAffected()
	if err != nil {
		outcome.Status = models.InsertStatusFailed
		outcome.Error = err.Error()
		return outcome
	}

	if affected == 0 {
		outcome.Status = models.InsertStatusDuplicate
	} else {
		outcome.Status = models.InsertStatusInserted
	}
	return outcome
}

// ListTransactions returns every stored row, newest first
func (r *TransactionRepo) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	records := []models.TransactionRecord{}

	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "transactions", "SELECT", func() error {
		return r.db.SelectContext(ctx, &records, selectTransactionsQuery)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return records, nil
}

// ListSummaryRows returns only the columns the finance summary needs
func (r *TransactionRepo) ListSummaryRows(ctx context.Context) ([]models.TransactionRecord, error) {
	records := []models.TransactionRecord{}

	err := nrpkg.WithDatastoreSegment(ctx, newrelic.DatastorePostgres, "transactions", "SELECT", func() error {
		return r.db.SelectContext(ctx, &records, selectSummaryRowsQuery)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read transactions for summary: %w", err)
	}

	return records, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfEmptyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	return nullIfEmpty(*s)
}

// jsonOrDefault keeps a JSON value as text, substituting def when the field
// was absent or null
func jsonOrDefault(raw json.RawMessage, def string) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return def
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return string(trimmed)
	}
	return buf.String()
}

func rawPayload(txn models.UpstreamTransaction) string {
	if len(txn.Raw) > 0 {
		return jsonOrDefault(txn.Raw, "{}")
	}
	data, err := json.Marshal(txn)
	if err != nil {
		return "{}"
	}
	return string(data)
}
