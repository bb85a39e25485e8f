package model

// OutcomeKind discriminates the variants of ResolutionOutcome.
type OutcomeKind string

const (
	OutcomeFAQHit        OutcomeKind = "faq_hit"
	OutcomeToolDispatch  OutcomeKind = "tool_dispatch"
	OutcomeTemplateHit   OutcomeKind = "template_hit"
	OutcomeGreeting      OutcomeKind = "greeting"
	OutcomeAgentFallback OutcomeKind = "agent_fallback"
	OutcomeError         OutcomeKind = "error"
)

// RankedMatch pairs a stored FAQ entry with its similarity to the query,
// kept on FAQHit outcomes for observability.
type RankedMatch struct {
	Entry      FAQEntry
	Similarity float64
}

// FAQHit is a semantic retrieval success.
type FAQHit struct {
	Entry           FAQEntry
	Similarity      float64
	RewrittenAnswer string        // empty when the rewrite call failed or was skipped
	TopMatches      []RankedMatch // top-ranked matches above threshold, at most 3
}

// ToolDispatch carries a classified intent for downstream execution.
type ToolDispatch struct {
	Intent Intent
}

// TemplateHit is a fuzzy trigger-phrase match.
type TemplateHit struct {
	Template        Template
	Score           float64
	ExtractedParams map[string]any
}

// AgentFallback is a generated (or canned) conversational answer.
type AgentFallback struct {
	FreeText    string
	Suggestions []string
}

// ResolutionOutcome is the single result of one resolution call. Exactly one
// variant is populated, identified by Kind.
type ResolutionOutcome struct {
	Kind          OutcomeKind
	FAQHit        *FAQHit
	ToolDispatch  *ToolDispatch
	TemplateHit   *TemplateHit
	Greeting      *AgentFallback
	AgentFallback *AgentFallback
	ErrorReason   string
}
