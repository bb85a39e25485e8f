package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // Vector dimension (e.g., 1024 for voyage-3)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload (metadata).
// Qdrant requires ID to be UUID or uint64, NOT arbitrary string.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32              `json:"vector"`           // Query vector
	Limit       int                    `json:"limit"`            // Top-K results
	WithPayload bool                   `json:"with_payload"`     // Include metadata
	WithVector  bool                   `json:"with_vector"`      // Include stored vectors
	Filter      map[string]interface{} `json:"filter,omitempty"` // Optional filters
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
	Vector  []float32              `json:"vector,omitempty"`
}

// RetrievePointsRequest fetches specific points by ID.
type RetrievePointsRequest struct {
	IDs         []string `json:"ids"`
	WithPayload bool     `json:"with_payload"`
	WithVector  bool     `json:"with_vector"`
}

// RetrievePointsResponse contains retrieved points.
type RetrievePointsResponse struct {
	Result []RetrievedPoint `json:"result"`
}

// RetrievedPoint is a point fetched by ID.
type RetrievedPoint struct {
	ID      string                 `json:"id"`
	Payload map[string]interface{} `json:"payload"`
	Vector  []float32              `json:"vector,omitempty"`
}

// ScrollRequest pages through all points in a collection.
type ScrollRequest struct {
	Limit       int         `json:"limit"`
	Offset      interface{} `json:"offset,omitempty"` // next_page_offset from previous page
	WithPayload bool        `json:"with_payload"`
	WithVector  bool        `json:"with_vector"`
}

// ScrollResponse is one page of a scroll.
type ScrollResponse struct {
	Result struct {
		Points         []RetrievedPoint `json:"points"`
		NextPageOffset interface{}      `json:"next_page_offset"`
	} `json:"result"`
}

// CountResponse holds the point count of a collection.
type CountResponse struct {
	Result struct {
		Count int `json:"count"`
	} `json:"result"`
}

// DeletePointsRequest is the request to delete points by ID.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}

// DeleteByFilterRequest deletes all points matching a filter.
// An empty filter matches every point.
type DeleteByFilterRequest struct {
	Filter map[string]interface{} `json:"filter"`
}
