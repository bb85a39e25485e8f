package usecase

import (
	"context"
	"errors"
	"strings"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/model"
	"retail-analytics/pkg/llmprovider"
)

// Resolve routes one question through the tiered pipeline. Tiers run in fixed
// order and each either terminates with an outcome or falls through; upstream
// service failures are absorbed into the next tier. Only empty input and
// vector-dimension violations surface as errors.
func (uc *implUseCase) Resolve(ctx context.Context, input assistant.ResolveInput) (model.ResolutionOutcome, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return model.ResolutionOutcome{}, assistant.ErrEmptyQuestion
	}

	uc.l.Infof(ctx, "%s: question=%q", LogPrefixResolve, question)

	// Tier 1: semantic FAQ retrieval.
	hit, err := uc.resolveFAQ(ctx, question)
	switch {
	case errors.Is(err, assistant.ErrVectorDimension):
		uc.l.Errorf(ctx, "%s: vector dimension violation: %v", LogPrefixResolve, err)
		return model.ResolutionOutcome{Kind: model.OutcomeError, ErrorReason: err.Error()}, err
	case err != nil:
		uc.l.Warnf(ctx, "%s: faq tier unavailable: %v", LogPrefixResolve, err)
	case hit != nil:
		return model.ResolutionOutcome{Kind: model.OutcomeFAQHit, FAQHit: hit}, nil
	}

	// Tier 2: capability questions short-circuit ahead of general intent so
	// they are never mis-routed to a data action.
	var detected *model.Intent
	if isCapabilityQuestion(question) {
		detected = uc.detector.Detect(ctx, question)
		if detected != nil && detected.Action == model.ActionCapabilities {
			return model.ResolutionOutcome{
				Kind:         model.OutcomeToolDispatch,
				ToolDispatch: &model.ToolDispatch{Intent: *detected},
			}, nil
		}
	}

	// Tier 3: general intent detection, for any action except capabilities.
	if detected == nil {
		detected = uc.detector.Detect(ctx, question)
	}
	if detected != nil && detected.Action != model.ActionCapabilities {
		return model.ResolutionOutcome{
			Kind:         model.OutcomeToolDispatch,
			ToolDispatch: &model.ToolDispatch{Intent: *detected},
		}, nil
	}

	// Tier 4: fuzzy template matching.
	if cand := uc.matcher.Match(ctx, question); cand != nil {
		return model.ResolutionOutcome{
			Kind: model.OutcomeTemplateHit,
			TemplateHit: &model.TemplateHit{
				Template:        cand.Template,
				Score:           cand.Score,
				ExtractedParams: copyParams(cand.Template.DefaultParams),
			},
		}, nil
	}

	// Tier 5: greeting/social, only after every business tier has passed.
	if isPrimarilyGreeting(question) {
		return model.ResolutionOutcome{
			Kind: model.OutcomeGreeting,
			Greeting: &model.AgentFallback{
				FreeText:    "Hello! I can help you with product forecasts, store analysis, top products, and sales reports.",
				Suggestions: FallbackSuggestions,
			},
		}, nil
	}

	// Tier 6: untrained knowledge base.
	if count, err := uc.repo.Count(ctx); err == nil && count == 0 {
		return model.ResolutionOutcome{
			Kind: model.OutcomeAgentFallback,
			AgentFallback: &model.AgentFallback{
				FreeText:    CannedUntrainedText,
				Suggestions: FallbackSuggestions,
			},
		}, nil
	}

	// Tier 7: conversational fallback. This tier never propagates an error.
	return model.ResolutionOutcome{
		Kind:          model.OutcomeAgentFallback,
		AgentFallback: uc.agentFallback(ctx, question),
	}, nil
}

func (uc *implUseCase) agentFallback(ctx context.Context, question string) *model.AgentFallback {
	resp, err := uc.llm.Complete(ctx, &llmprovider.Request{
		SystemPrompt: PromptAgentSystem,
		UserPrompt:   question,
		Temperature:  FallbackTemperature,
		MaxTokens:    FallbackMaxTokens,
	})
	if err == nil && strings.TrimSpace(resp.Text) != "" {
		return &model.AgentFallback{
			FreeText:    strings.TrimSpace(resp.Text),
			Suggestions: FallbackSuggestions,
		}
	}

	uc.l.Warnf(ctx, "%s: fallback completion failed, using canned reply: %v", LogPrefixResolve, err)
	return &model.AgentFallback{
		FreeText:    CannedFallbackText,
		Suggestions: FallbackSuggestions,
	}
}
