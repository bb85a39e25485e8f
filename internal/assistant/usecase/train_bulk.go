package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/assistant/repository"
)

// TrainBatch upserts a batch of (question, answer) pairs. Entries are split
// into chunks of TrainBatchSize; within a chunk entries run concurrently,
// between chunks the pacing limiter enforces a courtesy delay toward the
// embedding service. Per-entry failures are recorded, never fatal.
func (uc *implUseCase) TrainBatch(ctx context.Context, input assistant.TrainInput) (assistant.TrainOutput, error) {
	entries := input.Entries
	if len(entries) == 0 {
		return assistant.TrainOutput{}, assistant.ErrEmptyBatch
	}
	if len(entries) > uc.cfg.TrainBatchCap {
		return assistant.TrainOutput{}, assistant.ErrBatchTooLarge
	}

	uc.l.Infof(ctx, "%s: entries=%d batch_size=%d", LogPrefixTrain, len(entries), uc.cfg.TrainBatchSize)

	var (
		mu  sync.Mutex
		out assistant.TrainOutput
	)

	record := func(index int, question string, created bool, failErr error) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case failErr != nil:
			out.Failed++
			out.Failures = append(out.Failures, assistant.TrainFailure{
				Index:    index,
				Question: question,
				Reason:   failErr.Error(),
			})
		case created:
			out.Created++
		default:
			out.Updated++
		}
	}

	// Dispatched chunk work runs to completion even if the caller abandons
	// the request, so a chunk never leaves half-written embeddings behind.
	workCtx := context.WithoutCancel(ctx)

	for start := 0; start < len(entries); start += uc.cfg.TrainBatchSize {
		if err := uc.trainLimiter.Wait(workCtx); err != nil {
			return assistant.TrainOutput{}, err
		}

		end := start + uc.cfg.TrainBatchSize
		if end > len(entries) {
			end = len(entries)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(index int, entry assistant.TrainEntry) {
				defer wg.Done()
				created, err := uc.trainOne(workCtx, entry)
				record(index, entry.Question, created, err)
			}(i, entries[i])
		}
		wg.Wait()
	}

	sort.Slice(out.Failures, func(i, j int) bool { return out.Failures[i].Index < out.Failures[j].Index })

	uc.l.Infof(ctx, "%s: created=%d updated=%d failed=%d", LogPrefixTrain, out.Created, out.Updated, out.Failed)
	return out, nil
}

func (uc *implUseCase) trainOne(ctx context.Context, entry assistant.TrainEntry) (bool, error) {
	question := strings.TrimSpace(entry.Question)
	answer := strings.TrimSpace(entry.Answer)
	if question == "" {
		return false, assistant.ErrEmptyQuestion
	}
	if answer == "" {
		return false, assistant.ErrEmptyAnswer
	}

	result, err := uc.repo.Upsert(ctx, repository.UpsertOptions{
		Question: question,
		Answer:   answer,
	})
	if err != nil {
		return false, err
	}
	return result.Created, nil
}
