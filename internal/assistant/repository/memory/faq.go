// Package memory provides an in-process FAQRepository. It backs tests and
// single-node deployments where an external vector store is overkill; ranking
// is a full scan with cosine similarity.
package memory

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/assistant/repository"
	"retail-analytics/internal/model"
	pkgLog "retail-analytics/pkg/log"
	"retail-analytics/pkg/voyage"
)

const DefaultListLimit = 50

type implRepository struct {
	l        pkgLog.Logger
	embedder voyage.IVoyage

	mu         sync.RWMutex
	entries    map[string]model.FAQEntry // keyed by entry ID
	byQuestion map[string]string         // exact question -> entry ID
}

var _ repository.FAQRepository = (*implRepository)(nil)

// New creates an in-memory FAQ repository.
func New(l pkgLog.Logger, embedder voyage.IVoyage) *implRepository {
	return &implRepository{
		l:          l,
		embedder:   embedder,
		entries:    make(map[string]model.FAQEntry),
		byQuestion: make(map[string]string),
	}
}

func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) (repository.UpsertResult, error) {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Question})
	if err != nil {
		return repository.UpsertResult{}, fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) != 1 {
		return repository.UpsertResult{}, fmt.Errorf("embed question: expected 1 vector, got %d", len(vectors))
	}

	id := repository.EntryID(opt.Question)
	now := time.Now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.entries[id]
	entry := model.FAQEntry{
		ID:        id,
		Question:  opt.Question,
		Answer:    opt.Answer,
		Embedding: vectors[0],
		CreatedAt: now,
		UpdatedAt: now,
	}
	if ok {
		entry.CreatedAt = existing.CreatedAt
	}

	r.entries[id] = entry
	r.byQuestion[opt.Question] = id

	return repository.UpsertResult{ID: id, Created: !ok}, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return assistant.ErrEntryNotFound
	}
	delete(r.entries, id)
	delete(r.byQuestion, entry.Question)
	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := len(r.entries)
	r.entries = make(map[string]model.FAQEntry)
	r.byQuestion = make(map[string]string)
	return removed, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.FAQEntry, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]model.FAQEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		all = append(all, entry)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Question < all[j].Question })

	limit := opt.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}

	total := len(all)
	if offset >= total {
		return []model.FAQEntry{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

func (r *implRepository) Rank(ctx context.Context, queryVector []float32, limit int) ([]repository.RankedEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ranked := make([]repository.RankedEntry, 0, len(r.entries))
	for _, entry := range r.entries {
		sim, err := Cosine(queryVector, entry.Embedding)
		if err != nil {
			return nil, fmt.Errorf("rank entry %s: %w", entry.ID, err)
		}
		ranked = append(ranked, repository.RankedEntry{Entry: entry, Similarity: sim})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Similarity > ranked[j].Similarity })
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries), nil
}

// Cosine returns the cosine similarity of two vectors. A zero vector on
// either side yields 0; mismatched dimensions are a hard error because they
// mean the store holds vectors from a different embedding model.
func Cosine(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", assistant.ErrVectorDimension, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
