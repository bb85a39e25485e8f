package matcher

import (
	"context"
	"strings"
	"unicode"

	"retail-analytics/internal/model"
	pkgLog "retail-analytics/pkg/log"
)

// ExactMatchScore is assigned when the normalized input equals a trigger
// phrase verbatim, bypassing the scored pass entirely.
const ExactMatchScore = 100.0

// Matcher scores free-text input against the capability template registry.
// It never fails: absence of a match is a nil result, not an error.
type Matcher struct {
	registry *Registry
	l        pkgLog.Logger
}

// New creates a new template matcher over an immutable registry.
func New(registry *Registry, l pkgLog.Logger) *Matcher {
	return &Matcher{
		registry: registry,
		l:        l,
	}
}

// Registry returns the matcher's template registry.
func (m *Matcher) Registry() *Registry {
	return m.registry
}

// Match finds the best-scoring template for the input, or nil when nothing
// clears the acceptance threshold and the keyword fallback has no candidate.
func (m *Matcher) Match(ctx context.Context, input string) *model.ScoredCandidate {
	tokens := Normalize(input)
	if len(tokens) == 0 {
		return nil
	}
	normalized := strings.Join(tokens, " ")

	// Exact-match pass: a verbatim trigger phrase wins immediately.
	for _, tpl := range m.registry.Templates() {
		if normalized == strings.Join(Normalize(tpl.TriggerPhrase), " ") {
			m.l.Debugf(ctx, "%s: exact trigger match %q", LogPrefixMatch, tpl.TriggerPhrase)
			return &model.ScoredCandidate{
				Template:     tpl,
				Score:        ExactMatchScore,
				MatchedWords: tokens,
			}
		}
	}

	// Scored pass over every template; ties favor registration order.
	var best *model.ScoredCandidate
	for _, tpl := range m.registry.Templates() {
		candidate := m.scoreTemplate(tpl, tokens)
		if candidate == nil {
			continue
		}
		if best == nil || candidate.Score > best.Score {
			best = candidate
		}
	}

	if best != nil && (best.Score >= MinAcceptScore || len(best.MatchedWords) >= MinMatchedTokens) {
		m.l.Debugf(ctx, "%s: scored match %q score=%.2f matched=%d",
			LogPrefixMatch, best.Template.TriggerPhrase, best.Score, len(best.MatchedWords))
		return best
	}

	return m.keywordFallback(ctx, tokens)
}

// scoreTemplate sums pairwise token weights plus category and action bonuses.
func (m *Matcher) scoreTemplate(tpl model.Template, inputTokens []string) *model.ScoredCandidate {
	triggerTokens := Normalize(tpl.TriggerPhrase)
	if len(triggerTokens) == 0 {
		return nil
	}

	score := 0.0
	matchedSet := make(map[string]struct{})

	for _, in := range inputTokens {
		for _, tt := range triggerTokens {
			switch {
			case in == tt:
				score += WeightExactToken
				matchedSet[in] = struct{}{}
			case strings.Contains(in, tt) || strings.Contains(tt, in):
				score += WeightContainsToken
				matchedSet[in] = struct{}{}
			default:
				if sim := WordSimilarity(in, tt); sim > SimilarityGate {
					score += WeightSimilarToken * sim
					matchedSet[in] = struct{}{}
				}
			}
		}
	}

	score += m.categoryBonus(tpl, inputTokens)
	score += actionFragmentBonus(tpl.Action, inputTokens)

	if score == 0 {
		return nil
	}

	matched := make([]string, 0, len(matchedSet))
	for _, in := range inputTokens {
		if _, ok := matchedSet[in]; ok {
			matched = append(matched, in)
		}
	}

	return &model.ScoredCandidate{
		Template:     tpl,
		Score:        score,
		MatchedWords: matched,
	}
}

// categoryBonus adds a fixed bonus per category keyword present in the input
// when the keyword's category aligns with the template's.
func (m *Matcher) categoryBonus(tpl model.Template, inputTokens []string) float64 {
	category, ok := actionCategory[tpl.Action]
	if !ok {
		return 0
	}

	bonus := 0.0
	for _, keyword := range categoryKeywords[category] {
		for _, in := range inputTokens {
			if in == keyword {
				bonus += BonusCategoryKeyword
				break
			}
		}
	}
	return bonus
}

// actionFragmentBonus adds a small bonus per action-name fragment present in
// the input (e.g. "forecast" for getProductForecast).
func actionFragmentBonus(action model.ActionID, inputTokens []string) float64 {
	bonus := 0.0
	for _, fragment := range splitCamelCase(string(action)) {
		if len(fragment) < MinTokenLength || fragment == "get" {
			continue
		}
		for _, in := range inputTokens {
			if in == fragment {
				bonus += BonusActionFragment
				break
			}
		}
	}
	return bonus
}

// keywordFallback consults the coarse keyword table when scoring produced no
// acceptable candidate. The first input token with a fallback entry wins, and
// within the entry the first template whose trigger overlaps the head or tail
// of the input.
func (m *Matcher) keywordFallback(ctx context.Context, inputTokens []string) *model.ScoredCandidate {
	byTrigger := make(map[string]model.Template, len(m.registry.Templates()))
	for _, tpl := range m.registry.Templates() {
		byTrigger[tpl.TriggerPhrase] = tpl
	}

	head := inputTokens[0]
	tail := inputTokens[len(inputTokens)-1]

	for _, in := range inputTokens {
		candidates, ok := keywordFallback[in]
		if !ok {
			continue
		}
		for _, trigger := range candidates {
			tpl, ok := byTrigger[trigger]
			if !ok {
				continue
			}
			for _, tt := range Normalize(trigger) {
				if tt == head || tt == tail {
					m.l.Debugf(ctx, "%s: keyword fallback %q via %q", LogPrefixMatch, trigger, in)
					return &model.ScoredCandidate{
						Template:     tpl,
						Score:        MinAcceptScore,
						MatchedWords: []string{in},
					}
				}
			}
		}
	}

	return nil
}

// splitCamelCase breaks a camelCase identifier into lowercased fragments.
func splitCamelCase(s string) []string {
	var fragments []string
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) && sb.Len() > 0 {
			fragments = append(fragments, sb.String())
			sb.Reset()
		}
		sb.WriteRune(unicode.ToLower(r))
	}
	if sb.Len() > 0 {
		fragments = append(fragments, sb.String())
	}
	return fragments
}

// Normalize lowercases, trims, strips punctuation, and drops tokens of
// length 2 or shorter.
func Normalize(input string) []string {
	lowered := strings.ToLower(strings.TrimSpace(input))

	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}

	fields := strings.Fields(sb.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len([]rune(f)) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
