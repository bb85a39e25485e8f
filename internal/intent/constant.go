package intent

// Log prefixes
const (
	LogPrefixDetect = "internal.intent.Detect"
)

// Detection prompt. The model must answer with a single JSON object; anything
// else is treated as a primary-path failure and handed to the regex rules.
const (
	PromptDetectSystem = `You are the intent classifier of a retail analytics assistant.
Classify the user's question into exactly one of these actions:

- getProductForecast: forecast demand for a product (params: product, city optional)
- getProductAnalysis: analyze sales performance of a product (params: product)
- getStoreAnalysisByName: analyze a store (params: store)
- getTopProducts: list best selling products (params: city optional, limit optional)
- getProductCount: count products in the catalog (no params)
- getSalesReport: generate the sales report (params: period optional)
- getAnalyticsDashboard: summarize the analytics dashboard (no params)
- getCapabilities: the user asks what the assistant can do (no params)
- getReplenishmentSuggestions: suggest stock replenishment (params: store optional)

Return ONLY a JSON object with this exact shape and nothing else:
{"action": "<action>", "params": {...}, "description": "<short reasoning>", "confidence": 0.0-1.0}

If the question fits none of the actions, use an empty action: {"action": "", "params": {}, "description": "no match", "confidence": 0}`
)

// Detection configuration
const (
	DetectTemperature = 0.1
	DetectMaxTokens   = 512

	// MinLLMConfidence gates the primary path: a classification below this
	// confidence is handed to the regex rules instead.
	MinLLMConfidence = 0.4

	// RuleConfidence is the fixed confidence assigned to regex rule hits.
	RuleConfidence = 0.75
)
