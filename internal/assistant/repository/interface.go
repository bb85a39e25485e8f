package repository

import (
	"context"

	"retail-analytics/internal/model"
)

// FAQRepository is the interface for knowledge-base storage and ranking.
// Implementations own embedding on write: Upsert computes the entry's vector
// before storing it.
type FAQRepository interface {
	// Upsert stores a (question, answer) pair keyed on the exact question
	// string: an existing entry for the same question is updated and
	// re-embedded, otherwise a new entry is created.
	Upsert(ctx context.Context, opt UpsertOptions) (UpsertResult, error)

	// Delete removes one entry by ID. Returns assistant.ErrEntryNotFound
	// when the ID is unknown.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every entry and returns how many were removed.
	DeleteAll(ctx context.Context) (int, error)

	// List returns a page of entries plus the total count.
	List(ctx context.Context, opt ListOptions) ([]model.FAQEntry, int, error)

	// Rank scores every stored entry against the query vector by cosine
	// similarity and returns the top entries in descending order.
	Rank(ctx context.Context, queryVector []float32, limit int) ([]RankedEntry, error)

	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)
}

// RankedEntry pairs a stored entry with its similarity to a query vector.
type RankedEntry struct {
	Entry      model.FAQEntry
	Similarity float64
}
