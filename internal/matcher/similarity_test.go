package matcher_test

import (
	"testing"

	"retail-analytics/internal/matcher"
)

func TestWordSimilarity(t *testing.T) {
	t.Run("Identical Tokens Score One", func(t *testing.T) {
		for _, tok := range []string{"sales", "forecast", "dashboard", "abc"} {
			if got := matcher.WordSimilarity(tok, tok); got != 1 {
				t.Errorf("WordSimilarity(%q, %q) = %v, want 1", tok, tok, got)
			}
		}
	})

	t.Run("Symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"forecast", "forecasting"},
			{"store", "stores"},
			{"sales", "selling"},
			{"product", "report"},
		}
		for _, p := range pairs {
			ab := matcher.WordSimilarity(p[0], p[1])
			ba := matcher.WordSimilarity(p[1], p[0])
			if ab != ba {
				t.Errorf("WordSimilarity not symmetric for (%q, %q): %v vs %v", p[0], p[1], ab, ba)
			}
		}
	})

	t.Run("Short Tokens Score Zero", func(t *testing.T) {
		if got := matcher.WordSimilarity("hi", "hi"); got != 0 {
			t.Errorf("expected 0 for tokens shorter than %d runes, got %v", matcher.MinTokenLength, got)
		}
		if got := matcher.WordSimilarity("ab", "abc"); got != 0 {
			t.Errorf("expected 0 when either token is short, got %v", got)
		}
	})

	t.Run("Bounded To Unit Interval", func(t *testing.T) {
		pairs := [][2]string{
			{"forecast", "forecasts"},
			{"analytics", "analysis"},
			{"xyz", "abc"},
			{"replenishment", "replenish"},
		}
		for _, p := range pairs {
			got := matcher.WordSimilarity(p[0], p[1])
			if got < 0 || got > 1 {
				t.Errorf("WordSimilarity(%q, %q) = %v, outside [0,1]", p[0], p[1], got)
			}
		}
	})

	t.Run("Related Tokens Score Higher Than Unrelated", func(t *testing.T) {
		related := matcher.WordSimilarity("forecast", "forecasting")
		unrelated := matcher.WordSimilarity("forecast", "store")
		if related <= unrelated {
			t.Errorf("expected related pair (%v) to outscore unrelated pair (%v)", related, unrelated)
		}
	})
}
