package usecase

import (
	"time"

	"github.com/piresc/ecotrack/internal/pkg/models"
	"github.com/piresc/ecotrack/services/transactions"
)

const (
	defaultMaxPages    = 100
	defaultSyncTimeout = 120 * time.Second
	defaultLockTTL     = 300 * time.Second

	defaultInsertTimeout = 60 * time.Second
)

type transactionUC struct {
	cfg         *models.Config
	repo        transactions.TransactionRepo
	lockRepo    transactions.SyncLockRepo
	knotGW      transactions.KnotGW
	eventGW     transactions.EventGW
	maxPages    int
	syncTimeout time.Duration
	lockTTL     time.Duration
	now         func() time.Time

	insertTimeout time.Duration
}

// NewTransactionUC creates the transactions use case. Non-positive sync
// settings fall back to their defaults.
func NewTransactionUC(
	cfg *models.Config,
	repo transactions.TransactionRepo,
	lockRepo transactions.SyncLockRepo,
	knotGW transactions.KnotGW,
	eventGW transactions.EventGW,
) transactions.TransactionUC {
	uc := &transactionUC{
		cfg:         cfg,
		repo:        repo,
		lockRepo:    lockRepo,
		knotGW:      knotGW,
		eventGW:     eventGW,
		maxPages:    defaultMaxPages,
		syncTimeout: defaultSyncTimeout,
		lockTTL:     defaultLockTTL,
		now:         time.Now,

		insertTimeout: defaultInsertTimeout,
	}

	if cfg.Sync.MaxPages > 0 {
		uc.maxPages = cfg.Sync.MaxPages
	}
	if cfg.Sync.TimeoutSeconds > 0 {
		uc.syncTimeout = time.Duration(cfg.Sync.TimeoutSeconds) * time.Second
	}
	if cfg.Sync.LockTTLSeconds > 0 {
		uc.lockTTL = time.Duration(cfg.Sync.LockTTLSeconds) * time.Second
	}
	if cfg.Sync.InsertTimeoutSeconds > 0 {
		uc.insertTimeout = time.Duration(cfg.Sync.InsertTimeoutSeconds) * time.Second
	}

	return uc
}
