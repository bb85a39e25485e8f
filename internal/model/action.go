package model

// ActionID identifies a downstream data-retrieval capability.
// A typed identifier (instead of raw strings switched on at runtime) lets the
// dispatch registry verify exhaustiveness at startup.
type ActionID string

const (
	ActionProductForecast    ActionID = "getProductForecast"
	ActionProductAnalysis    ActionID = "getProductAnalysis"
	ActionStoreAnalysis      ActionID = "getStoreAnalysisByName"
	ActionTopProducts        ActionID = "getTopProducts"
	ActionProductCount       ActionID = "getProductCount"
	ActionSalesReport        ActionID = "getSalesReport"
	ActionAnalyticsDashboard ActionID = "getAnalyticsDashboard"
	ActionCapabilities       ActionID = "getCapabilities"
	ActionReplenishment      ActionID = "getReplenishmentSuggestions"
)

// AllActions lists every dispatchable action, in a stable order.
func AllActions() []ActionID {
	return []ActionID{
		ActionProductForecast,
		ActionProductAnalysis,
		ActionStoreAnalysis,
		ActionTopProducts,
		ActionProductCount,
		ActionSalesReport,
		ActionAnalyticsDashboard,
		ActionCapabilities,
		ActionReplenishment,
	}
}

// Valid reports whether a is a known action.
func (a ActionID) Valid() bool {
	for _, known := range AllActions() {
		if a == known {
			return true
		}
	}
	return false
}

// Intent is a structured classification result: which action the user wants
// and the parameters extracted from their question.
type Intent struct {
	Action      ActionID
	Params      map[string]any
	Description string
	Confidence  float64 // 0-1
}
