// Package qdrant implements FAQRepository on a Qdrant collection. Entry IDs
// are deterministic UUIDs derived from the exact question string, so the
// upsert-by-question contract holds at the vector layer.
package qdrant

import (
	"context"
	"fmt"
	"sort"
	"time"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/assistant/repository"
	"retail-analytics/internal/model"
	pkgLog "retail-analytics/pkg/log"
	"retail-analytics/pkg/qdrant"
	"retail-analytics/pkg/voyage"
)

const (
	DefaultListLimit = 50
	scrollPageSize   = 256
)

type implRepository struct {
	l          pkgLog.Logger
	client     *qdrant.Client
	embedder   voyage.IVoyage
	collection string
	vectorSize int
}

var _ repository.FAQRepository = (*implRepository)(nil)

// New creates a Qdrant-backed FAQ repository.
func New(l pkgLog.Logger, client *qdrant.Client, embedder voyage.IVoyage, collection string, vectorSize int) *implRepository {
	return &implRepository{
		l:          l,
		client:     client,
		embedder:   embedder,
		collection: collection,
		vectorSize: vectorSize,
	}
}

// EnsureCollection creates the collection if it does not exist. Qdrant treats
// re-creation with the same schema as a no-op conflict, which we tolerate.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	err := r.client.CreateCollection(ctx, qdrant.CreateCollectionRequest{
		Name: r.collection,
		Vectors: qdrant.VectorConfig{
			Size:     r.vectorSize,
			Distance: "Cosine",
		},
	})
	if err != nil {
		r.l.Warnf(ctx, "qdrant.EnsureCollection: create %s: %v (may already exist)", r.collection, err)
	}
	return nil
}

func (r *implRepository) Upsert(ctx context.Context, opt repository.UpsertOptions) (repository.UpsertResult, error) {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Question})
	if err != nil {
		return repository.UpsertResult{}, fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) != 1 {
		return repository.UpsertResult{}, fmt.Errorf("embed question: expected 1 vector, got %d", len(vectors))
	}
	if len(vectors[0]) != r.vectorSize {
		return repository.UpsertResult{}, fmt.Errorf("%w: got %d, collection expects %d",
			assistant.ErrVectorDimension, len(vectors[0]), r.vectorSize)
	}

	id := repository.EntryID(opt.Question)
	now := time.Now().UTC()
	createdAt := now

	existing, err := r.client.RetrievePoints(ctx, r.collection, qdrant.RetrievePointsRequest{
		IDs:         []string{id},
		WithPayload: true,
	})
	if err != nil {
		return repository.UpsertResult{}, fmt.Errorf("check existing point: %w", err)
	}
	created := len(existing.Result) == 0
	if !created {
		if ts, ok := existing.Result[0].Payload["created_at"].(string); ok {
			if parsed, perr := time.Parse(time.RFC3339, ts); perr == nil {
				createdAt = parsed
			}
		}
	}

	err = r.client.UpsertPoints(ctx, r.collection, qdrant.UpsertPointsRequest{
		Points: []qdrant.Point{{
			ID:     id,
			Vector: vectors[0],
			Payload: map[string]interface{}{
				"question":   opt.Question,
				"answer":     opt.Answer,
				"created_at": createdAt.Format(time.RFC3339),
				"updated_at": now.Format(time.RFC3339),
			},
		}},
	})
	if err != nil {
		return repository.UpsertResult{}, fmt.Errorf("upsert point: %w", err)
	}

	return repository.UpsertResult{ID: id, Created: created}, nil
}

func (r *implRepository) Delete(ctx context.Context, id string) error {
	existing, err := r.client.RetrievePoints(ctx, r.collection, qdrant.RetrievePointsRequest{
		IDs: []string{id},
	})
	if err != nil {
		return fmt.Errorf("check existing point: %w", err)
	}
	if len(existing.Result) == 0 {
		return assistant.ErrEntryNotFound
	}

	if err := r.client.DeletePoints(ctx, r.collection, []string{id}); err != nil {
		return fmt.Errorf("delete point: %w", err)
	}
	return nil
}

func (r *implRepository) DeleteAll(ctx context.Context) (int, error) {
	count, err := r.client.CountPoints(ctx, r.collection)
	if err != nil {
		return 0, fmt.Errorf("count points: %w", err)
	}

	err = r.client.DeleteByFilter(ctx, r.collection, qdrant.DeleteByFilterRequest{})
	if err != nil {
		return 0, fmt.Errorf("delete all points: %w", err)
	}
	return count, nil
}

func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) ([]model.FAQEntry, int, error) {
	all := make([]model.FAQEntry, 0, scrollPageSize)

	var offset interface{}
	for {
		page, err := r.client.ScrollPoints(ctx, r.collection, qdrant.ScrollRequest{
			Limit:       scrollPageSize,
			Offset:      offset,
			WithPayload: true,
		})
		if err != nil {
			return nil, 0, fmt.Errorf("scroll points: %w", err)
		}
		for _, point := range page.Result.Points {
			all = append(all, entryFromPayload(point.ID, point.Payload, point.Vector))
		}
		if page.Result.NextPageOffset == nil {
			break
		}
		offset = page.Result.NextPageOffset
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Question < all[j].Question })

	limit := opt.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	start := opt.Offset
	if start < 0 {
		start = 0
	}

	total := len(all)
	if start >= total {
		return []model.FAQEntry{}, total, nil
	}
	end := start + limit
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

func (r *implRepository) Rank(ctx context.Context, queryVector []float32, limit int) ([]repository.RankedEntry, error) {
	if len(queryVector) != r.vectorSize {
		return nil, fmt.Errorf("%w: got %d, collection expects %d",
			assistant.ErrVectorDimension, len(queryVector), r.vectorSize)
	}

	resp, err := r.client.SearchPoints(ctx, r.collection, qdrant.SearchRequest{
		Vector:      queryVector,
		Limit:       limit,
		WithPayload: true,
	})
	if err != nil {
		return nil, fmt.Errorf("search points: %w", err)
	}

	ranked := make([]repository.RankedEntry, 0, len(resp.Result))
	for _, point := range resp.Result {
		ranked = append(ranked, repository.RankedEntry{
			Entry:      entryFromPayload(point.ID, point.Payload, point.Vector),
			Similarity: point.Score,
		})
	}
	return ranked, nil
}

func (r *implRepository) Count(ctx context.Context) (int, error) {
	count, err := r.client.CountPoints(ctx, r.collection)
	if err != nil {
		return 0, fmt.Errorf("count points: %w", err)
	}
	return count, nil
}

func entryFromPayload(id string, payload map[string]interface{}, vector []float32) model.FAQEntry {
	entry := model.FAQEntry{ID: id, Embedding: vector}
	if q, ok := payload["question"].(string); ok {
		entry.Question = q
	}
	if a, ok := payload["answer"].(string); ok {
		entry.Answer = a
	}
	if ts, ok := payload["created_at"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.CreatedAt = parsed
		}
	}
	if ts, ok := payload["updated_at"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339, ts); err == nil {
			entry.UpdatedAt = parsed
		}
	}
	return entry
}
