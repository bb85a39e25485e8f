package model

// Template maps a predefined trigger phrase to a downstream action.
// Templates are immutable after startup; the registry holding them is
// shared by concurrent requests without synchronization.
type Template struct {
	TriggerPhrase  string
	Action         ActionID
	Description    string
	RequiredInputs []string
	DefaultParams  map[string]any
}

// ScoredCandidate is a transient per-resolution match of an input against
// one template.
type ScoredCandidate struct {
	Template     Template
	Score        float64
	MatchedWords []string
}
