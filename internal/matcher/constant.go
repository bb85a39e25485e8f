package matcher

import "retail-analytics/internal/model"

// Log prefixes
const (
	LogPrefixMatch = "internal.matcher.Match"
)

// Pairwise token match weights. WeightSimilarToken is multiplied by the
// similarity value, which must clear SimilarityGate first.
const (
	WeightExactToken    = 3.0
	WeightContainsToken = 2.0
	WeightSimilarToken  = 1.5
	SimilarityGate      = 0.7
)

// Bonus weights added on top of pairwise token scores.
const (
	BonusCategoryKeyword = 2.0 // category keyword literally present in the input
	BonusActionFragment  = 1.0 // action-name fragment present in the input
)

// Match acceptance thresholds: a candidate needs either a score of at least
// MinAcceptScore or at least MinMatchedTokens distinct matched input tokens.
const (
	MinAcceptScore   = 2.0
	MinMatchedTokens = 2
)

// categoryKeywords groups trigger vocabulary by capability category. A +2
// bonus applies per keyword present in the input when the template belongs
// to the category.
var categoryKeywords = map[string][]string{
	"analytics": {"analytics", "dashboard", "analysis", "insight", "insights"},
	"replenish": {"replenish", "replenishment", "restock", "reorder", "stock"},
	"store":     {"store", "stores", "branch", "outlet"},
	"sales":     {"sales", "revenue", "report", "selling"},
	"product":   {"product", "products", "item", "items", "forecast"},
}

// actionCategory maps each action to its keyword category.
var actionCategory = map[model.ActionID]string{
	model.ActionProductForecast:    "product",
	model.ActionProductAnalysis:    "product",
	model.ActionStoreAnalysis:      "store",
	model.ActionTopProducts:        "product",
	model.ActionProductCount:       "product",
	model.ActionSalesReport:        "sales",
	model.ActionAnalyticsDashboard: "analytics",
	model.ActionCapabilities:       "analytics",
	model.ActionReplenishment:      "replenish",
}

// keywordFallback maps a single coarse keyword to candidate trigger phrases,
// consulted only when no template clears the scoring threshold. Best effort:
// greeting and social words are deliberately excluded so the router's
// greeting tier keeps owning them.
var keywordFallback = map[string][]string{
	"forecast":  {"forecast product sales", "show analytics dashboard"},
	"dashboard": {"show analytics dashboard"},
	"sales":     {"show sales report", "show top products"},
	"store":     {"analyze store performance"},
	"stock":     {"suggest replenishment"},
	"products":  {"show top products", "count products"},
}
