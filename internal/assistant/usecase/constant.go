package usecase

import "time"

const (
	LogPrefixResolve = "assistant.Resolve"
	LogPrefixTrain   = "assistant.TrainBatch"
	LogPrefixFAQ     = "assistant.resolveFAQ"
)

const (
	DefaultFAQThreshold   = 0.70
	DefaultTrainBatchSize = 10
	DefaultTrainBatchCap  = 100
	DefaultTrainPacing    = 500 * time.Millisecond
	DefaultEmbedCacheSize = 512

	// RankLimit bounds the candidate list fetched per FAQ lookup.
	RankLimit = 10
	// TopMatchesKept is how many ranked matches a FAQHit carries for
	// observability.
	TopMatchesKept = 3
)

const (
	RewriteTemperature  = 0.4
	RewriteMaxTokens    = 512
	FallbackTemperature = 0.7
	FallbackMaxTokens   = 512
)

// PromptRewriteSystem constrains the answer rewrite to the retrieved entry.
const PromptRewriteSystem = `You are a retail analytics assistant. You will receive one stored FAQ entry (question and answer) and a user question that matched it.

Rewrite the stored answer into a fluent, direct reply to the user's question.

Rules:
- Use ONLY the stored answer as your source of facts. Do not add numbers, dates, or claims that are not in it.
- If the stored answer does not actually address the user's question, reply exactly: "I don't have that information in my knowledge base."
- Keep the reply concise.`

// PromptAgentSystem drives the last-resort conversational tier.
const PromptAgentSystem = `You are a retail analytics assistant. You can forecast product demand, analyze products and stores, list top-selling products, count products, produce sales reports, summarize the analytics dashboard, and suggest replenishment orders.

The user's question did not match any of those capabilities directly. Reply conversationally and helpfully in 2-3 sentences, steering them toward something you can do. Do not invent data.`

// Canned texts used when the conversational tier itself is unavailable.
const (
	CannedUntrainedText = "I haven't been trained with any knowledge yet. Ask your administrator to load the FAQ knowledge base, or try one of the suggestions below."
	CannedFallbackText  = "I'm not sure how to help with that. Try asking about product forecasts, store performance, top-selling products, or sales reports."
)

// FallbackSuggestions is the fixed suggestion list attached to greeting and
// fallback outcomes.
var FallbackSuggestions = []string{
	"Show me the top 5 selling products",
	"Sales report for this month",
	"Forecast for milk in Chicago",
	"What can you do?",
}

// capabilityPhrases short-circuit capability questions ahead of the general
// intent tier so they are never mis-routed to a data action.
var capabilityPhrases = []string{
	"what can you do",
	"what are your capabilities",
	"tell me about yourself",
	"who are you",
}

// greetingLexicon feeds the "primarily a greeting" heuristic. It runs after
// every business tier, so broad words like "good" are safe here.
var greetingLexicon = map[string]struct{}{
	"hi":        {},
	"hello":     {},
	"hey":       {},
	"yo":        {},
	"greetings": {},
	"good":      {},
	"morning":   {},
	"afternoon": {},
	"evening":   {},
	"thanks":    {},
	"thank":     {},
	"thx":       {},
	"you":       {},
	"bye":       {},
	"goodbye":   {},
	"farewell":  {},
}
