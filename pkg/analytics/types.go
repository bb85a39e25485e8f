package analytics

import "encoding/json"

// ExecuteRequest is the body sent to the reporting service action endpoint.
type ExecuteRequest struct {
	Params map[string]any `json:"params"`
}

// ExecuteResponse is the reporting service response envelope.
type ExecuteResponse struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}
