package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/assistant/repository"
	"retail-analytics/internal/assistant/usecase"
)

func TestTrainBatch(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty Batch Rejected", func(t *testing.T) {
		uc := usecase.New(testLogger{}, testConfig(), &mockRepo{}, &mockEmbedder{vector: []float32{1}},
			&mockCompleter{}, &stubDetector{}, newTestMatcher())

		_, err := uc.TrainBatch(ctx, assistant.TrainInput{})
		if !errors.Is(err, assistant.ErrEmptyBatch) {
			t.Errorf("expected ErrEmptyBatch, got %v", err)
		}
	})

	t.Run("Oversized Batch Rejected Without Processing", func(t *testing.T) {
		var upserts int
		var mu sync.Mutex
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertOptions) (repository.UpsertResult, error) {
				mu.Lock()
				upserts++
				mu.Unlock()
				return repository.UpsertResult{Created: true}, nil
			},
		}
		uc := usecase.New(testLogger{}, testConfig(), repo, &mockEmbedder{vector: []float32{1}},
			&mockCompleter{}, &stubDetector{}, newTestMatcher())

		entries := make([]assistant.TrainEntry, 101)
		for i := range entries {
			entries[i] = assistant.TrainEntry{Question: fmt.Sprintf("q%d", i), Answer: "a"}
		}

		_, err := uc.TrainBatch(ctx, assistant.TrainInput{Entries: entries})
		if !errors.Is(err, assistant.ErrBatchTooLarge) {
			t.Fatalf("expected ErrBatchTooLarge, got %v", err)
		}
		if upserts != 0 {
			t.Errorf("expected no entries processed, got %d upserts", upserts)
		}
	})

	t.Run("Single Missing Answer Fails In Isolation", func(t *testing.T) {
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertOptions) (repository.UpsertResult, error) {
				return repository.UpsertResult{ID: opt.Question, Created: true}, nil
			},
		}
		uc := usecase.New(testLogger{}, testConfig(), repo, &mockEmbedder{vector: []float32{1}},
			&mockCompleter{}, &stubDetector{}, newTestMatcher())

		entries := make([]assistant.TrainEntry, 25)
		for i := range entries {
			entries[i] = assistant.TrainEntry{Question: fmt.Sprintf("q%d", i), Answer: "a"}
		}
		entries[12].Answer = "" // entry #13

		out, err := uc.TrainBatch(ctx, assistant.TrainInput{Entries: entries})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created != 24 {
			t.Errorf("created = %d, want 24", out.Created)
		}
		if out.Failed != 1 {
			t.Errorf("failed = %d, want 1", out.Failed)
		}
		if len(out.Failures) != 1 {
			t.Fatalf("failures = %d, want 1", len(out.Failures))
		}
		if out.Failures[0].Index != 12 {
			t.Errorf("failure index = %d, want 12", out.Failures[0].Index)
		}
		if out.Failures[0].Question != "q12" {
			t.Errorf("failure question = %q, want q12", out.Failures[0].Question)
		}
	})

	t.Run("Created And Updated Counted Separately", func(t *testing.T) {
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertOptions) (repository.UpsertResult, error) {
				return repository.UpsertResult{ID: opt.Question, Created: opt.Question != "existing"}, nil
			},
		}
		uc := usecase.New(testLogger{}, testConfig(), repo, &mockEmbedder{vector: []float32{1}},
			&mockCompleter{}, &stubDetector{}, newTestMatcher())

		out, err := uc.TrainBatch(ctx, assistant.TrainInput{Entries: []assistant.TrainEntry{
			{Question: "existing", Answer: "new answer"},
			{Question: "brand new", Answer: "a"},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created != 1 || out.Updated != 1 || out.Failed != 0 {
			t.Errorf("got created=%d updated=%d failed=%d, want 1/1/0", out.Created, out.Updated, out.Failed)
		}
	})

	t.Run("Repository Failures Recorded Per Entry", func(t *testing.T) {
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertOptions) (repository.UpsertResult, error) {
				if opt.Question == "bad" {
					return repository.UpsertResult{}, errors.New("embedding quota exceeded")
				}
				return repository.UpsertResult{Created: true}, nil
			},
		}
		uc := usecase.New(testLogger{}, testConfig(), repo, &mockEmbedder{vector: []float32{1}},
			&mockCompleter{}, &stubDetector{}, newTestMatcher())

		out, err := uc.TrainBatch(ctx, assistant.TrainInput{Entries: []assistant.TrainEntry{
			{Question: "good", Answer: "a"},
			{Question: "bad", Answer: "a"},
			{Question: "also good", Answer: "a"},
		}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created != 2 || out.Failed != 1 {
			t.Errorf("got created=%d failed=%d, want 2/1", out.Created, out.Failed)
		}
		if len(out.Failures) != 1 || out.Failures[0].Index != 1 {
			t.Fatalf("expected single failure at index 1, got %+v", out.Failures)
		}
	})

	t.Run("Chunks Are Paced", func(t *testing.T) {
		repo := &mockRepo{
			upsertFunc: func(opt repository.UpsertOptions) (repository.UpsertResult, error) {
				return repository.UpsertResult{Created: true}, nil
			},
		}
		cfg := testConfig()
		cfg.TrainBatchSize = 5
		cfg.TrainPacing = 20 * time.Millisecond
		uc := usecase.New(testLogger{}, cfg, repo, &mockEmbedder{vector: []float32{1}},
			&mockCompleter{}, &stubDetector{}, newTestMatcher())

		entries := make([]assistant.TrainEntry, 15)
		for i := range entries {
			entries[i] = assistant.TrainEntry{Question: fmt.Sprintf("q%d", i), Answer: "a"}
		}

		start := time.Now()
		out, err := uc.TrainBatch(ctx, assistant.TrainInput{Entries: entries})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Created != 15 {
			t.Errorf("created = %d, want 15", out.Created)
		}
		// 3 chunks: the second and third wait for the pacing limiter.
		if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
			t.Errorf("elapsed = %v, expected at least 40ms of pacing", elapsed)
		}
	})
}
