package usecase_test

import (
	"context"

	"retail-analytics/internal/assistant/repository"
	"retail-analytics/internal/matcher"
	"retail-analytics/internal/model"
	"retail-analytics/pkg/llmprovider"
)

// Silent logger for tests.
type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Info(ctx context.Context, arg ...any)                     {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Error(ctx context.Context, arg ...any)                    {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock FAQ repository with per-method hooks.
type mockRepo struct {
	upsertFunc    func(opt repository.UpsertOptions) (repository.UpsertResult, error)
	deleteFunc    func(id string) error
	deleteAllFunc func() (int, error)
	listFunc      func(opt repository.ListOptions) ([]model.FAQEntry, int, error)
	rankFunc      func(queryVector []float32, limit int) ([]repository.RankedEntry, error)
	countFunc     func() (int, error)
}

func (m *mockRepo) Upsert(ctx context.Context, opt repository.UpsertOptions) (repository.UpsertResult, error) {
	if m.upsertFunc == nil {
		return repository.UpsertResult{ID: "id", Created: true}, nil
	}
	return m.upsertFunc(opt)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFunc == nil {
		return nil
	}
	return m.deleteFunc(id)
}

func (m *mockRepo) DeleteAll(ctx context.Context) (int, error) {
	if m.deleteAllFunc == nil {
		return 0, nil
	}
	return m.deleteAllFunc()
}

func (m *mockRepo) List(ctx context.Context, opt repository.ListOptions) ([]model.FAQEntry, int, error) {
	if m.listFunc == nil {
		return nil, 0, nil
	}
	return m.listFunc(opt)
}

func (m *mockRepo) Rank(ctx context.Context, queryVector []float32, limit int) ([]repository.RankedEntry, error) {
	if m.rankFunc == nil {
		return nil, nil
	}
	return m.rankFunc(queryVector, limit)
}

func (m *mockRepo) Count(ctx context.Context) (int, error) {
	if m.countFunc == nil {
		return 0, nil
	}
	return m.countFunc()
}

// Mock embedder.
type mockEmbedder struct {
	vector []float32
	err    error
}

func (m *mockEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = m.vector
	}
	return out, nil
}

// Mock chat completer.
type mockCompleter struct {
	text string
	err  error
}

func (m *mockCompleter) Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text}, nil
}

// Stub detector with a fixed result.
type stubDetector struct {
	intent *model.Intent
}

func (s *stubDetector) Detect(ctx context.Context, question string) *model.Intent {
	return s.intent
}

func newTestMatcher() *matcher.Matcher {
	return matcher.New(matcher.NewRegistry(matcher.DefaultTemplates()), testLogger{})
}
