package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	httpclient "github.com/piresc/ecotrack/internal/pkg/http"
	"github.com/piresc/ecotrack/internal/pkg/models"
)

const (
	endpointTransactionsSync = "/transactions/sync"
	endpointSessionCreate    = "/session/create"

	sessionTypeTransactionLink = "transaction_link"
)

// KnotGW is the HTTP gateway to the transaction-aggregation API
type KnotGW struct {
	client        *httpclient.BasicAuthClient
	sessionUserID string
}

func NewKnotGW(cfg *models.Config) *KnotGW {
	return &KnotGW{
		client: httpclient.NewBasicAuthClient(httpclient.Config{
			BaseURL:     cfg.Knot.BaseURL,
			Username:    cfg.Knot.ClientID,
			Password:    cfg.Knot.ClientSecret,
			Timeout:     time.Duration(cfg.Knot.TimeoutSeconds) * time.Second,
			ServiceName: "knot",
		}),
		sessionUserID: cfg.Knot.SessionUserID,
	}
}

// SyncTransactions fetches one page of transactions
func (g *KnotGW) SyncTransactions(ctx context.Context, req models.SyncRequest) (*models.SyncPage, error) {
	var page models.SyncPage
	if err := g.client.PostJSON(ctx, endpointTransactionsSync, req, &page); err != nil {
		return nil, fmt.Errorf("failed to sync transactions: %w", err)
	}
	return &page, nil
}

// ForwardSync fetches one page and returns the upstream body untouched
func (g *KnotGW) ForwardSync(ctx context.Context, req models.SyncRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := g.client.PostJSON(ctx, endpointTransactionsSync, req, &raw); err != nil {
		return nil, fmt.Errorf("failed to sync transactions: %w", err)
	}
	return raw, nil
}

// CreateSession opens a transaction-link session for the configured user
func (g *KnotGW) CreateSession(ctx context.Context) (json.RawMessage, error) {
	req := models.SessionRequest{
		ExternalUserID: g.sessionUserID,
		Type:           sessionTypeTransactionLink,
	}

	var raw json.RawMessage
	if err := g.client.PostJSON(ctx, endpointSessionCreate, req, &raw); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return raw, nil
}
