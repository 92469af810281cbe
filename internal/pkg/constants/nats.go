package constants

// NATS Subjects
const (
	// Transactions service
	SubjectTransactionsSynced = "transactions.synced"
)
