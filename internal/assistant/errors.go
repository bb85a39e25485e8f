package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyQuestion   = errors.New("question is empty")
	ErrEmptyAnswer     = errors.New("answer is empty")
	ErrEntryNotFound   = errors.New("faq entry not found")
	ErrBatchTooLarge   = errors.New("training batch exceeds the maximum size")
	ErrEmptyBatch      = errors.New("training batch is empty")
	ErrVectorDimension = errors.New("embedding dimension mismatch")
)
