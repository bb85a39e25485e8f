package usecase

import (
	"context"
	"fmt"
	"strings"

	"retail-analytics/internal/model"
	"retail-analytics/pkg/llmprovider"
)

// resolveFAQ runs the semantic retrieval tier. A nil hit with a nil error
// means the knowledge base has no entry above the threshold; an error means
// the tier itself could not run (embedding or store failure).
func (uc *implUseCase) resolveFAQ(ctx context.Context, question string) (*model.FAQHit, error) {
	vector, err := uc.embedQuestion(ctx, question)
	if err != nil {
		return nil, err
	}

	ranked, err := uc.repo.Rank(ctx, vector, RankLimit)
	if err != nil {
		return nil, fmt.Errorf("rank entries: %w", err)
	}

	var matches []model.RankedMatch
	for _, re := range ranked {
		if re.Similarity < uc.cfg.FAQThreshold {
			continue
		}
		matches = append(matches, model.RankedMatch{Entry: re.Entry, Similarity: re.Similarity})
		if len(matches) == TopMatchesKept {
			break
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}

	best := matches[0]
	hit := &model.FAQHit{
		Entry:      best.Entry,
		Similarity: best.Similarity,
		TopMatches: matches,
	}

	// Rewrite is an enhancement: any failure falls back to the stored answer.
	rewritten, err := uc.rewriteAnswer(ctx, question, best.Entry)
	if err != nil {
		uc.l.Warnf(ctx, "%s: rewrite failed, using stored answer: %v", LogPrefixFAQ, err)
		return hit, nil
	}
	hit.RewrittenAnswer = rewritten
	return hit, nil
}

func (uc *implUseCase) rewriteAnswer(ctx context.Context, question string, entry model.FAQEntry) (string, error) {
	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		SystemPrompt: PromptRewriteSystem,
		UserPrompt: fmt.Sprintf("Stored question: %s\nStored answer: %s\n\nUser question: %s",
			entry.Question, entry.Answer, question),
		Temperature: RewriteTemperature,
		MaxTokens:   RewriteMaxTokens,
	})
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("empty rewrite response")
	}
	return text, nil
}
