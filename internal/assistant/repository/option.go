package repository

// UpsertOptions holds the parameters for storing one knowledge-base entry.
type UpsertOptions struct {
	Question string // Exact-string upsert key, trimmed by the caller
	Answer   string
}

// UpsertResult reports whether the upsert created a new entry or updated an
// existing one.
type UpsertResult struct {
	ID      string
	Created bool
}

// ListOptions holds pagination parameters for listing entries.
type ListOptions struct {
	Limit  int // Max number of results (default 50)
	Offset int
}
