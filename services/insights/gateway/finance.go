package gateway

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/transactions"
)

// FinanceGW reads the spending summary from the transactions use case
type FinanceGW struct {
	transactionUC transactions.TransactionUC
}

// NewFinanceGW creates a new finance gateway
func NewFinanceGW(transactionUC transactions.TransactionUC) *FinanceGW {
	return &FinanceGW{transactionUC: transactionUC}
}

func (g *FinanceGW) GetFinanceSummary(ctx context.Context) (*models.FinanceSummary, error) {
	return g.transactionUC.GetFinanceSummary(ctx)
}
