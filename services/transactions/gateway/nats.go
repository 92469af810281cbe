package gateway

import (
	"context"

	"github.com/piresc/ecotrack/internal/pkg/constants"
	"github.com/piresc/ecotrack/internal/pkg/models"
	natspkg "github.com/piresc/ecotrack/internal/pkg/nats"
	nrpkg "github.com/piresc/ecotrack/internal/pkg/newrelic"
)

// EventGW handles NATS publishing for transaction events
type EventGW struct {
	natsClient *natspkg.Client
}

// NewEventGW creates the gateway. A nil client drops every event.
func NewEventGW(client *natspkg.Client) *EventGW {
	return &EventGW{
		natsClient: client,
	}
}

// PublishTransactionsSynced publishes a drain summary
func (g *EventGW) PublishTransactionsSynced(ctx context.Context, event models.TransactionsSyncedEvent) error {
	return nrpkg.WithSegment(ctx, "nats.publish."+constants.SubjectTransactionsSynced, func() error {
		return g.natsClient.PublishJSON(constants.SubjectTransactionsSynced, event)
	})
}
