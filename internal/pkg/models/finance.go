package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// FinanceSummary is the aggregate view over every stored transaction.
// It is computed on each request and never persisted.
type FinanceSummary struct {
	TotalTransactions    int
	TotalSpent           decimal.Decimal
	TransactionsByStatus map[string]int
}

// MarshalJSON renders the summary with totalSpent as a JSON number
func (s FinanceSummary) MarshalJSON() ([]byte, error) {
	byStatus := s.TransactionsByStatus
	if byStatus == nil {
		byStatus = map[string]int{}
	}
	return json.Marshal(struct {
		TotalTransactions    int            `json:"totalTransactions"`
		TotalSpent           float64        `json:"totalSpent"`
		TransactionsByStatus map[string]int `json:"transactionsByStatus"`
	}{
		TotalTransactions:    s.TotalTransactions,
		TotalSpent:           s.TotalSpent.InexactFloat64(),
		TransactionsByStatus: byStatus,
	})
}
