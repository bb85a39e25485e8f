package matcher

import "retail-analytics/internal/model"

// Registry holds the immutable set of capability templates. It is built once
// at startup and shared by reference; concurrent reads need no locking
// because nothing mutates it afterwards.
type Registry struct {
	templates []model.Template
}

// NewRegistry creates a registry from the given templates, preserving order.
// Registration order is significant: scoring ties are broken in favor of the
// earlier template.
func NewRegistry(templates []model.Template) *Registry {
	owned := make([]model.Template, len(templates))
	copy(owned, templates)
	return &Registry{templates: owned}
}

// Templates returns the registered templates in registration order.
func (r *Registry) Templates() []model.Template {
	return r.templates
}

// DefaultTemplates is the built-in capability registry of the retail
// assistant.
func DefaultTemplates() []model.Template {
	return []model.Template{
		{
			TriggerPhrase:  "forecast product sales",
			Action:         model.ActionProductForecast,
			Description:    "Forecast demand for a product, optionally scoped to a city",
			RequiredInputs: []string{"product"},
			DefaultParams:  map[string]any{"horizon_days": 30},
		},
		{
			TriggerPhrase:  "analyze product performance",
			Action:         model.ActionProductAnalysis,
			Description:    "Analyze historical sales performance of a product",
			RequiredInputs: []string{"product"},
		},
		{
			TriggerPhrase:  "analyze store performance",
			Action:         model.ActionStoreAnalysis,
			Description:    "Analyze a store by name",
			RequiredInputs: []string{"store"},
		},
		{
			TriggerPhrase: "show top products",
			Action:        model.ActionTopProducts,
			Description:   "List the best selling products, optionally by city",
			DefaultParams: map[string]any{"limit": 10},
		},
		{
			TriggerPhrase: "count products",
			Action:        model.ActionProductCount,
			Description:   "Count products in the catalog",
		},
		{
			TriggerPhrase: "show sales report",
			Action:        model.ActionSalesReport,
			Description:   "Generate the sales report for the current period",
		},
		{
			TriggerPhrase: "show analytics dashboard",
			Action:        model.ActionAnalyticsDashboard,
			Description:   "Open the analytics dashboard summary",
		},
		{
			TriggerPhrase: "suggest replenishment",
			Action:        model.ActionReplenishment,
			Description:   "Suggest stock replenishment quantities",
		},
		{
			TriggerPhrase: "what can you do",
			Action:        model.ActionCapabilities,
			Description:   "Describe assistant capabilities",
		},
	}
}
