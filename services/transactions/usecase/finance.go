package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/piresc/ecotrack/internal/pkg/logger"
	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric prefix of a total such as "12.99 USD"
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

func (uc *transactionUC) GetFinanceSummary(ctx context.Context) (*models.FinanceSummary, error) {
	rows, err := uc.repo.ListSummaryRows(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(rows)
	return &summary, nil
}

// Summarize counts every row by status and adds up price totals. Rows whose
// price cannot be read, has no total, or is CANCELLED are counted but not
// added.
func Summarize(rows []models.TransactionRecord) models.FinanceSummary {
	summary := models.FinanceSummary{
		TotalTransactions:    len(rows),
		TotalSpent:           decimal.Zero,
		TransactionsByStatus: make(map[string]int),
	}

	for _, row := range rows {
		status := row.StatusLabel()
		summary.TransactionsByStatus[status]++

		if status == models.OrderStatusCancelled {
			continue
		}

		amount, ok := priceTotal(row)
		if !ok {
			continue
		}
		summary.TotalSpent = summary.TotalSpent.Add(amount)
	}

	return summary
}

// priceTotal extracts price.total as a decimal. total may be a string or a
// number. A string contributes its leading number, so "12.99 USD" is 12.99.
// Empty, zero, null and totals with no leading number are rejected.
func priceTotal(row models.TransactionRecord) (decimal.Decimal, bool) {
	var price map[string]json.RawMessage
	if err := json.Unmarshal([]byte(row.Price), &price); err != nil {
		logger.Warn("Error parsing price data for transaction",
			logger.String("transaction_id", row.TransactionID),
			logger.Err(err))
		return decimal.Zero, false
	}

	raw, ok := price["total"]
	if !ok {
		return decimal.Zero, false
	}

	var total interface{}
	decoder := json.NewDecoder(strings.NewReader(string(raw)))
	decoder.UseNumber()
	if err := decoder.Decode(&total); err != nil {
		return decimal.Zero, false
	}

	var text string
	switch v := total.(type) {
	case string:
		text = strings.TrimSpace(v)
	case json.Number:
		text = v.String()
	default:
		return decimal.Zero, false
	}
	if text == "" {
		return decimal.Zero, false
	}

	amount, err := decimal.NewFromString(leadingNumber.FindString(text))
	if err != nil {
		logger.Warn("Ignoring non-numeric price total",
			logger.String("transaction_id", row.TransactionID),
			logger.String("total", text))
		return decimal.Zero, false
	}
	if amount.IsZero() {
		return decimal.Zero, false
	}
	return amount, true
}
