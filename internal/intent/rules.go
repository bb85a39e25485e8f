package intent

import (
	"regexp"
	"strconv"
	"strings"

	"retail-analytics/internal/model"
)

// Rule is one (pattern, extractor) pair of the fallback chain. Rules are
// evaluated in slice order against the lowercased question and the first
// match wins, so ordering is part of the contract.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(groups []string) (model.ActionID, map[string]any, string)
}

// MatchRules evaluates the rules in order and returns the first hit, or nil.
func MatchRules(question string, rules []Rule) *model.Intent {
	lowered := strings.ToLower(strings.TrimSpace(question))
	if lowered == "" {
		return nil
	}

	for _, rule := range rules {
		groups := rule.Pattern.FindStringSubmatch(lowered)
		if groups == nil {
			continue
		}

		action, params, description := rule.Extract(groups)
		return &model.Intent{
			Action:      action,
			Params:      params,
			Description: description,
			Confidence:  RuleConfidence,
		}
	}

	return nil
}

// DefaultRules is the built-in ordered rule chain.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:    "top-products",
			Pattern: regexp.MustCompile(`top\s+(\d+\s+)?(?:selling\s+)?products?(?:\s+in\s+([a-z][a-z\s]*?))?[?.!\s]*$`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				params := map[string]any{}
				if limit := strings.TrimSpace(groups[1]); limit != "" {
					if n, err := strconv.Atoi(limit); err == nil {
						params["limit"] = n
					}
				}
				if city := strings.TrimSpace(groups[2]); city != "" {
					params["city"] = city
				}
				return model.ActionTopProducts, params, "top products request"
			},
		},
		{
			Name:    "product-count",
			Pattern: regexp.MustCompile(`how\s+many\s+products?`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionProductCount, map[string]any{}, "product count request"
			},
		},
		{
			Name:    "sales-report",
			Pattern: regexp.MustCompile(`sales\s+report`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionSalesReport, map[string]any{}, "sales report request"
			},
		},
		{
			Name:    "analytics-dashboard",
			Pattern: regexp.MustCompile(`analytics\s+dashboard|dashboard\s+summary`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionAnalyticsDashboard, map[string]any{}, "analytics dashboard request"
			},
		},
		{
			Name:    "store-analysis",
			Pattern: regexp.MustCompile(`(?:store\s+analysis\s+(?:for|of)\s+|analy[sz]e\s+(?:the\s+)?store\s+)([a-z0-9][a-z0-9\s]*?)[?.!\s]*$`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionStoreAnalysis,
					map[string]any{"store": strings.TrimSpace(groups[1])},
					"store analysis request"
			},
		},
		{
			Name:    "product-forecast",
			Pattern: regexp.MustCompile(`forecast\s+(?:for\s+)?([a-z0-9][a-z0-9\s]*?)(?:\s+in\s+([a-z][a-z\s]*?))?[?.!\s]*$`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				params := map[string]any{"product": strings.TrimSpace(groups[1])}
				if city := strings.TrimSpace(groups[2]); city != "" {
					params["city"] = city
				}
				return model.ActionProductForecast, params, "product forecast request"
			},
		},
		{
			Name:    "replenishment",
			Pattern: regexp.MustCompile(`replenish|restock|reorder`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionReplenishment, map[string]any{}, "replenishment request"
			},
		},
		{
			Name:    "generic-analysis",
			Pattern: regexp.MustCompile(`^(.+?)\s+analysis[?.!\s]*$`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionProductAnalysis,
					map[string]any{"product": strings.TrimSpace(groups[1])},
					"generic analysis request"
			},
		},
		{
			Name:    "capabilities",
			Pattern: regexp.MustCompile(`what\s+(?:can|are)\s+you|your\s+capabilities|who\s+are\s+you|tell\s+me\s+about\s+yourself`),
			Extract: func(groups []string) (model.ActionID, map[string]any, string) {
				return model.ActionCapabilities, map[string]any{}, "capability question"
			},
		},
	}
}
