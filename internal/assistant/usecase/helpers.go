package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"
)

// embedQuestion returns the embedding for a question, serving repeats from
// the LRU cache.
func (uc *implUseCase) embedQuestion(ctx context.Context, question string) ([]float32, error) {
	if cached, ok := uc.embedCache.Get(question); ok {
		return cached, nil
	}

	vectors, err := uc.embedder.Embed(ctx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed question: expected 1 vector, got %d", len(vectors))
	}

	uc.embedCache.Add(question, vectors[0])
	return vectors[0], nil
}

// socialTokens lowercases and splits on non-alphanumerics, keeping short
// tokens like "hi" that the template normalizer would drop.
func socialTokens(input string) []string {
	var sb strings.Builder
	sb.Grow(len(input))
	for _, r := range strings.ToLower(input) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Fields(sb.String())
}

// isCapabilityQuestion reports whether the input contains one of the fixed
// capability-asking phrasings.
func isCapabilityQuestion(question string) bool {
	lowered := strings.ToLower(question)
	for _, phrase := range capabilityPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// isPrimarilyGreeting reports whether more than half of the input's tokens
// come from the greeting lexicon.
func isPrimarilyGreeting(question string) bool {
	tokens := socialTokens(question)
	if len(tokens) == 0 {
		return false
	}

	hits := 0
	for _, tok := range tokens {
		if _, ok := greetingLexicon[tok]; ok {
			hits++
		}
	}
	return hits*2 > len(tokens)
}

// copyParams returns a shallow copy so outcomes never alias registry state.
func copyParams(params map[string]any) map[string]any {
	copied := make(map[string]any, len(params))
	for k, v := range params {
		copied[k] = v
	}
	return copied
}
