package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestEventGW_NilClientDropsEvent(t *testing.T) {
	gw := NewEventGW(nil)

	err := gw.PublishTransactionsSynced(context.Background(), models.TransactionsSyncedEvent{
		SyncID:         "sync-1",
		ExternalUserID: "user-1",
		MerchantID:     "19",
		Fetched:        2,
		Inserted:       2,
		SyncedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	assert.NoError(t, err)
}
