package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/transactions"
	"github.com/piresc/ecotrack/services/transactions/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "pgx"), mock
}

func decodeTransactions(t *testing.T, payload string) []models.UpstreamTransaction {
	t.Helper()
	var txns []models.UpstreamTransaction
	require.NoError(t, json.Unmarshal([]byte(payload), &txns))
	return txns
}

func TestInsertTransactions_InsertsEveryItem(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	txns := decodeTransactions(t, `[
		{"id": "t1", "external_id": "ext-1", "datetime": "2024-01-01T00:00:00Z", "url": "https://shop.test/1",
		 "order_status": "COMPLETED", "payment_methods": [{"type": "CARD"}], "price": {"total": "10.00"},
		 "products": [{"name": "Oat milk"}], "merchant": {"id": 19, "name": "DoorDash"}},
		{"id": 2, "order_status": "PENDING"},
		{"id": "t3", "external_id": "", "price": null}
	]`)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("t1", "ext-1", "2024-01-01T00:00:00Z", "https://shop.test/1", "COMPLETED",
			`[{"type":"CARD"}]`, `{"total":"10.00"}`, `[{"name":"Oat milk"}]`, "19", "DoorDash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("2", nil, nil, nil, "PENDING", "[]", "{}", "[]", nil, nil, `{"id":2,"order_status":"PENDING"}`).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("t3", nil, nil, nil, nil, "[]", "{}", "[]", nil, nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(3, 1))

	outcomes := repo.InsertTransactions(context.Background(), txns)

	require.Len(t, outcomes, 3)
	for i, id := range []string{"t1", "2", "t3"} {
		assert.Equal(t, id, outcomes[i].TransactionID)
		assert.Equal(t, models.InsertStatusInserted, outcomes[i].Status)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTransactions_DuplicateAndFailureDoNotAbortSiblings(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	txns := decodeTransactions(t, `[{"id": "dup"}, {"id": "bad"}, {"id": "ok"}]`)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (transaction_id) DO NOTHING")).
		WithArgs("dup", nil, nil, nil, nil, "[]", "{}", "[]", nil, nil, `{"id":"dup"}`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("bad", nil, nil, nil, nil, "[]", "{}", "[]", nil, nil, `{"id":"bad"}`).
		WillReturnError(errors.New("value too long"))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("ok", nil, nil, nil, nil, "[]", "{}", "[]", nil, nil, `{"id":"ok"}`).
		WillReturnResult(sqlmock.NewResult(5, 1))

	outcomes := repo.InsertTransactions(context.Background(), txns)

	require.Len(t, outcomes, 3)
	assert.Equal(t, models.InsertStatusDuplicate, outcomes[0].Status)
	assert.Equal(t, models.InsertStatusFailed, outcomes[1].Status)
	assert.Equal(t, "value too long", outcomes[1].Error)
	assert.Equal(t, models.InsertStatusInserted, outcomes[2].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTransactions_MissingIDIsRejectedWithoutQuery(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	txns := decodeTransactions(t, `[{"order_status": "COMPLETED"}, {"id": null}]`)

	outcomes := repo.InsertTransactions(context.Background(), txns)

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		assert.Equal(t, models.InsertStatusFailed, o.Status)
		assert.Equal(t, transactions.ErrMissingTransactionID.Error(), o.Error)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTransactions_CancelledContextAttemptsNothing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := repo.InsertTransactions(ctx, decodeTransactions(t, `[{"id": "t1"}, {"id": "t2"}]`))

	require.Len(t, outcomes, 2)
	for i, id := range []string{"t1", "t2"} {
		assert.Equal(t, id, outcomes[i].TransactionID)
		assert.Equal(t, models.InsertStatusFailed, outcomes[i].Status)
		assert.Equal(t, "not attempted: context canceled", outcomes[i].Error)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertTransactions_DeadlineMidBatchReportsRemainingAsFailed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("t1", nil, nil, nil, nil, "[]", "{}", "[]", nil, nil, `{"id":"t1"}`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO transactions")).
		WithArgs("t2", nil, nil, nil, nil, "[]", "{}", "[]", nil, nil, `{"id":"t2"}`).
		WillDelayFor(200 * time.Millisecond).
		WillReturnResult(sqlmock.NewResult(2, 1))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	outcomes := repo.InsertTransactions(ctx, decodeTransactions(t, `[{"id": "t1"}, {"id": "t2"}, {"id": "t3"}]`))

	require.Len(t, outcomes, 3)
	assert.Equal(t, models.InsertOutcome{TransactionID: "t1", Status: models.InsertStatusInserted}, outcomes[0])
	assert.Equal(t, "t2", outcomes[1].TransactionID)
	assert.Equal(t, models.InsertStatusFailed, outcomes[1].Status)
	assert.Equal(t, "t3", outcomes[2].TransactionID)
	assert.Equal(t, models.InsertStatusFailed, outcomes[2].Status)
	assert.Equal(t, "not attempted: context deadline exceeded", outcomes[2].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_NewestFirst(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	columns := []string{"id", "transaction_id", "external_id", "datetime", "url", "order_status",
		"payment_methods", "price", "products", "merchant_id", "merchant_name", "raw_data"}
	rows := sqlmock.NewRows(columns).
		AddRow(2, "t2", nil, "2024-02-01", nil, nil, "[]", `{"total":"5"}`, "[]", "19", "DoorDash", `{"id":"t2"}`).
		AddRow(1, "t1", "ext", "2024-01-01", "https://x", "COMPLETED", "[]", "{}", "[]", nil, nil, `{"id":"t1"}`)

	mock.ExpectQuery(regexp.QuoteMeta("FROM transactions ORDER BY id DESC")).WillReturnRows(rows)

	records, err := repo.ListTransactions(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(2), records[0].ID)
	assert.Nil(t, records[0].OrderStatus)
	assert.Equal(t, models.OrderStatusUnknown, records[0].StatusLabel())
	assert.Equal(t, "DoorDash", *records[0].MerchantName)
	assert.Equal(t, "COMPLETED", *records[1].OrderStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListTransactions_EmptyIsNotNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, transaction_id")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	records, err := repo.ListTransactions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestListTransactions_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, transaction_id")).WillReturnError(assert.AnError)

	_, err := repo.ListTransactions(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "failed to list transactions")
}

func TestListSummaryRows(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewTransactionRepo(&models.Config{}, db)

	rows := sqlmock.NewRows([]string{"id", "transaction_id", "order_status", "price"}).
		AddRow(1, "t1", "COMPLETED", `{"total":"100.50"}`).
		AddRow(2, "t2", nil, "invalid-json")

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, transaction_id, order_status, price")).WillReturnRows(rows)

	records, err := repo.ListSummaryRows(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `{"total":"100.50"}`, records[0].Price)
	assert.Nil(t, records[1].OrderStatus)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, transaction_id, order_status, price")).WillReturnError(assert.AnError)
	_, err = repo.ListSummaryRows(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
