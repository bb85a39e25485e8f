package matcher_test

import (
	"context"
	"testing"

	"retail-analytics/internal/matcher"
	"retail-analytics/internal/model"
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

func newTestMatcher() *matcher.Matcher {
	return matcher.New(matcher.NewRegistry(matcher.DefaultTemplates()), testLogger{})
}

func TestMatch(t *testing.T) {
	ctx := context.Background()
	m := newTestMatcher()

	t.Run("Exact Trigger Phrase Wins With Max Score", func(t *testing.T) {
		for _, tpl := range matcher.DefaultTemplates() {
			got := m.Match(ctx, tpl.TriggerPhrase)
			if got == nil {
				t.Fatalf("expected match for verbatim trigger %q", tpl.TriggerPhrase)
			}
			if got.Score != matcher.ExactMatchScore {
				t.Errorf("trigger %q: score = %v, want %v", tpl.TriggerPhrase, got.Score, matcher.ExactMatchScore)
			}
			if got.Template.Action != tpl.Action {
				t.Errorf("trigger %q: action = %v, want %v", tpl.TriggerPhrase, got.Template.Action, tpl.Action)
			}
		}
	})

	t.Run("Exact Match Survives Punctuation And Case", func(t *testing.T) {
		got := m.Match(ctx, "Show TOP products!")
		if got == nil || got.Score != matcher.ExactMatchScore {
			t.Fatalf("expected exact match, got %+v", got)
		}
		if got.Template.Action != model.ActionTopProducts {
			t.Errorf("action = %v, want %v", got.Template.Action, model.ActionTopProducts)
		}
	})

	t.Run("Fuzzy Match Clears Threshold", func(t *testing.T) {
		got := m.Match(ctx, "please show the sales report for today")
		if got == nil {
			t.Fatal("expected a fuzzy match")
		}
		if got.Template.Action != model.ActionSalesReport {
			t.Errorf("action = %v, want %v", got.Template.Action, model.ActionSalesReport)
		}
	})

	t.Run("No Match Returns Nil", func(t *testing.T) {
		if got := m.Match(ctx, "completely unrelated question about weather"); got != nil {
			t.Errorf("expected nil, got %+v", got)
		}
	})

	t.Run("Empty Input Returns Nil", func(t *testing.T) {
		if got := m.Match(ctx, "   "); got != nil {
			t.Errorf("expected nil for blank input, got %+v", got)
		}
		if got := m.Match(ctx, "hi"); got != nil {
			t.Errorf("expected nil for all-short-token input, got %+v", got)
		}
	})

	t.Run("Keyword Fallback Picks Edge Overlap Candidate", func(t *testing.T) {
		got := m.Match(ctx, "dashboard")
		if got == nil {
			t.Fatal("expected keyword fallback match")
		}
		if got.Template.Action != model.ActionAnalyticsDashboard {
			t.Errorf("action = %v, want %v", got.Template.Action, model.ActionAnalyticsDashboard)
		}
	})
}

func TestNormalize(t *testing.T) {
	got := matcher.Normalize("  Hi, SHOW me the Top-Products!? ")
	want := []string{"show", "the", "top", "products"}
	if len(got) != len(want) {
		t.Fatalf("Normalize = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %q, want %q", i, got[i], want[i])
		}
	}
}
