package constants

// Redis key formats
const (
	// Transactions service
	KeySyncLock = "sync:lock:%s:%s" // Format: sync:lock:{external_user_id}:{merchant_id}

	// Community service
	KeyPlacesGeo    = "places:geo"    // Geo set of place IDs
	KeyPlacesDetail = "places:detail" // Hash of place ID to JSON place
)

