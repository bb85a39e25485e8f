package intent

import (
	"context"
	"encoding/json"
	"strings"

	"retail-analytics/internal/model"
	"retail-analytics/pkg/llmprovider"
)

// Detect classifies the question. The LLM path is attempted first; any
// transport failure, malformed output, or low-confidence answer degrades
// silently to the regex rule chain. Returns nil when neither path matched.
func (d *LLMDetector) Detect(ctx context.Context, question string) *model.Intent {
	if intent := d.detectWithLLM(ctx, question); intent != nil {
		return intent
	}
	return MatchRules(question, d.rules)
}

// detectWithLLM runs the primary classification call. Returns nil on any
// failure; the caller decides what happens next.
func (d *LLMDetector) detectWithLLM(ctx context.Context, question string) *model.Intent {
	resp, err := d.llm.Complete(ctx, &llmprovider.Request{
		SystemPrompt: PromptDetectSystem,
		UserPrompt:   question,
		Temperature:  DetectTemperature,
		MaxTokens:    DetectMaxTokens,
	})
	if err != nil {
		d.l.Warnf(ctx, "%s: LLM call failed, falling back to rules: %v", LogPrefixDetect, err)
		return nil
	}

	object := extractJSONObject(resp.Text)
	if object == "" {
		d.l.Warnf(ctx, "%s: no JSON object in LLM response, falling back to rules", LogPrefixDetect)
		return nil
	}

	var raw rawIntent
	if err := json.Unmarshal([]byte(object), &raw); err != nil {
		d.l.Warnf(ctx, "%s: failed to parse LLM response, falling back to rules: %v", LogPrefixDetect, err)
		return nil
	}

	action := model.ActionID(strings.TrimSpace(raw.Action))
	if action == "" || !action.Valid() {
		d.l.Infof(ctx, "%s: LLM returned no usable action (%q)", LogPrefixDetect, raw.Action)
		return nil
	}
	if raw.Params == nil {
		d.l.Warnf(ctx, "%s: LLM response missing params, falling back to rules", LogPrefixDetect)
		return nil
	}

	confidence := raw.Confidence
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	if confidence < MinLLMConfidence {
		d.l.Infof(ctx, "%s: LLM confidence %.2f below gate, falling back to rules", LogPrefixDetect, confidence)
		return nil
	}

	d.l.Infof(ctx, "%s: classified as %s (confidence %.2f)", LogPrefixDetect, action, confidence)
	return &model.Intent{
		Action:      action,
		Params:      raw.Params,
		Description: raw.Description,
		Confidence:  confidence,
	}
}

// extractJSONObject returns the first balanced {...} substring of text, or
// empty. Models often wrap JSON in prose or markdown fences; this skips all
// of that without regex backtracking.
func extractJSONObject(text string) string {
	start := strings.IndexByte(text, '{')
	if start == -1 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return ""
}
