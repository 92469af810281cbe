package transactions

import "errors"

var (
	// ErrMissingSyncTarget is returned when a sync is requested without a
	// merchant or external user
	ErrMissingSyncTarget = errors.New("merchant.id and external_user_id are required")

	// ErrSyncInProgress is returned when another drain holds the lock for the
	// same merchant
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrPageBudgetExceeded is returned when the upstream keeps returning
	// cursors past the configured page budget
	ErrPageBudgetExceeded = errors.New("upstream pagination exceeded page budget")

	// ErrMissingTransactionID marks items the upstream sent without an id
	ErrMissingTransactionID = errors.New("transaction id is missing")
)
