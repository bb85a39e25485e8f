package voyage

import "time"

const (
	// DefaultBaseURL is the Voyage AI API endpoint.
	DefaultBaseURL = "https://api.voyageai.com/v1"

	// DefaultModel produces 1024-dimensional embeddings.
	DefaultModel = "voyage-3"

	// DefaultTimeout bounds a single embedding call.
	DefaultTimeout = 15 * time.Second
)
