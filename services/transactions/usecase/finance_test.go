package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/transactions/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func row(status *string, price string) models.TransactionRecord {
	return models.TransactionRecord{TransactionID: "t", OrderStatus: status, Price: price}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		rows     []models.TransactionRecord
		count    int
		spent    string
		byStatus map[string]int
	}{
		{
			name: "completed and pending are added",
			rows: []models.TransactionRecord{
				row(strPtr("COMPLETED"), `{"total":"100.50"}`),
				row(strPtr("COMPLETED"), `{"total":"200.25"}`),
				row(strPtr("PENDING"), `{"total":"50.00"}`),
			},
			count:    3,
			spent:    "350.75",
			byStatus: map[string]int{"COMPLETED": 2, "PENDING": 1},
		},
		{
			name: "cancelled is counted but not added",
			rows: []models.TransactionRecord{
				row(strPtr("COMPLETED"), `{"total":"100.00"}`),
				row(strPtr("CANCELLED"), `{"total":"75.00"}`),
			},
			count:    2,
			spent:    "100",
			byStatus: map[string]int{"COMPLETED": 1, "CANCELLED": 1},
		},
		{
			name: "unparsable price is skipped",
			rows: []models.TransactionRecord{
				row(strPtr("COMPLETED"), `not json`),
				row(strPtr("COMPLETED"), `{"total":"10.00"}`),
			},
			count:    2,
			spent:    "10",
			byStatus: map[string]int{"COMPLETED": 2},
		},
		{
			name: "missing or falsy total is skipped",
			rows: []models.TransactionRecord{
				row(strPtr("COMPLETED"), `{"subtotal":"5.00"}`),
				row(strPtr("COMPLETED"), `{"total":""}`),
				row(strPtr("COMPLETED"), `{"total":0}`),
				row(strPtr("COMPLETED"), `{"total":null}`),
				row(strPtr("COMPLETED"), `{"total":"abc"}`),
			},
			count:    5,
			spent:    "0",
			byStatus: map[string]int{"COMPLETED": 5},
		},
		{
			name: "string totals contribute their leading number",
			rows: []models.TransactionRecord{
				row(strPtr("COMPLETED"), `{"total":"12.99 USD"}`),
				row(strPtr("COMPLETED"), `{"total":" 7.01abc"}`),
				row(strPtr("COMPLETED"), `{"total":"USD 3.00"}`),
				row(strPtr("COMPLETED"), `{"total":"1e2"}`),
			},
			count:    4,
			spent:    "120",
			byStatus: map[string]int{"COMPLETED": 4},
		},
		{
			name: "numeric total and null status",
			rows: []models.TransactionRecord{
				row(nil, `{"total":12.5}`),
				row(strPtr(""), `{"total":"0.25"}`),
			},
			count:    2,
			spent:    "12.75",
			byStatus: map[string]int{"UNKNOWN": 2},
		},
		{
			name:     "empty table",
			rows:     nil,
			count:    0,
			spent:    "0",
			byStatus: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.rows)

			assert.Equal(t, tt.count, summary.TotalTransactions)
			assert.True(t, decimal.RequireFromString(tt.spent).Equal(summary.TotalSpent),
				"expected %s, got %s", tt.spent, summary.TotalSpent)
			assert.Equal(t, tt.byStatus, summary.TransactionsByStatus)

			sum := 0
			for _, n := range summary.TransactionsByStatus {
				sum += n
			}
			assert.Equal(t, summary.TotalTransactions, sum)
		})
	}
}

func TestGetFinanceSummary_JSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mocks.NewMockSyncLockRepo(ctrl), mocks.NewMockKnotGW(ctrl), mocks.NewMockEventGW(ctrl))

	mockRepo.EXPECT().ListSummaryRows(gomock.Any()).Return([]models.TransactionRecord{
		row(strPtr("COMPLETED"), `{"total":"100.50"}`),
		row(strPtr("COMPLETED"), `{"total":"200.25"}`),
		row(strPtr("PENDING"), `{"total":"50.00"}`),
	}, nil)

	summary, err := uc.GetFinanceSummary(context.Background())
	require.NoError(t, err)

	data, err := summary.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalTransactions":3,"totalSpent":350.75,"transactionsByStatus":{"COMPLETED":2,"PENDING":1}}`, string(data))
}

func TestGetFinanceSummary_EmptyJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mocks.NewMockSyncLockRepo(ctrl), mocks.NewMockKnotGW(ctrl), mocks.NewMockEventGW(ctrl))

	mockRepo.EXPECT().ListSummaryRows(gomock.Any()).Return([]models.TransactionRecord{}, nil)

	summary, err := uc.GetFinanceSummary(context.Background())
	require.NoError(t, err)

	data, err := summary.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalTransactions":0,"totalSpent":0,"transactionsByStatus":{}}`, string(data))
}

func TestGetFinanceSummary_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTransactionRepo(ctrl)
	uc := NewTransactionUC(&models.Config{}, mockRepo, mocks.NewMockSyncLockRepo(ctrl), mocks.NewMockKnotGW(ctrl), mocks.NewMockEventGW(ctrl))

	dbErr := errors.New("connection refused")
	mockRepo.EXPECT().ListSummaryRows(gomock.Any()).Return(nil, dbErr)

	summary, err := uc.GetFinanceSummary(context.Background())
	assert.ErrorIs(t, err, dbErr)
	assert.Nil(t, summary)
}
