package assistant

import "retail-analytics/internal/model"

// ResolveInput carries one user question through the resolution pipeline.
type ResolveInput struct {
	Question string
}

// TrainEntry is one (question, answer) pair submitted for training.
type TrainEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TrainInput is the input for bulk training.
type TrainInput struct {
	Entries []TrainEntry
}

// TrainFailure records one entry that could not be trained. Index refers to
// the entry's position in the submitted batch.
type TrainFailure struct {
	Index    int    `json:"index"`
	Question string `json:"question"`
	Reason   string `json:"reason"`
}

// TrainOutput summarizes a bulk training run. Partial success is normal:
// Created+Updated+Failed always equals the submitted batch size.
type TrainOutput struct {
	Created  int            `json:"created"`
	Updated  int            `json:"updated"`
	Failed   int            `json:"failed"`
	Failures []TrainFailure `json:"failures,omitempty"`
}

// ListInput holds pagination parameters for listing trained entries.
type ListInput struct {
	Limit  int
	Offset int
}

// ListOutput is a page of trained entries plus the total count.
type ListOutput struct {
	Entries []model.FAQEntry
	Total   int
}
