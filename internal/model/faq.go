package model

import "time"

// FAQEntry is a trained (question, answer, embedding) record used for
// semantic retrieval. The exact trimmed question string is the upsert key:
// training the same question again updates the entry instead of duplicating it.
type FAQEntry struct {
	ID        string
	Question  string
	Answer    string
	Embedding []float32
	CreatedAt time.Time
	UpdatedAt time.Time
}
