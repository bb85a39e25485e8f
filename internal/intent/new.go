package intent

import (
	"context"

	"retail-analytics/internal/model"
	"retail-analytics/pkg/llmprovider"
	pkgLog "retail-analytics/pkg/log"
)

// Detector classifies a free-text question into a structured intent.
// A nil result means no intent could be determined; detection never fails
// with an error because every failure mode has a designed fallback.
type Detector interface {
	Detect(ctx context.Context, question string) *model.Intent
}

// Completer is the chat-completion dependency, satisfied by
// llmprovider.Manager.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// LLMDetector detects intent with an LLM classification call, falling back
// to an ordered list of regex rules when the model path fails.
type LLMDetector struct {
	llm   Completer
	l     pkgLog.Logger
	rules []Rule
}

var _ Detector = (*LLMDetector)(nil)

// New creates a new LLMDetector with the default rule set.
func New(llm Completer, l pkgLog.Logger) *LLMDetector {
	return &LLMDetector{
		llm:   llm,
		l:     l,
		rules: DefaultRules(),
	}
}
