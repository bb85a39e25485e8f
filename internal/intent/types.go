package intent

// rawIntent is the JSON shape the model is instructed to return.
type rawIntent struct {
	Action      string         `json:"action"`
	Params      map[string]any `json:"params"`
	Description string         `json:"description"`
	Confidence  float64        `json:"confidence"`
}
