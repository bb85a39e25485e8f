package http

import (
	"errors"

	"retail-analytics/internal/assistant"
	pkgErrors "retail-analytics/pkg/errors"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, assistant.ErrEmptyQuestion):
		return pkgErrors.NewBadRequest(10001, "question is required")
	case errors.Is(err, assistant.ErrEmptyBatch):
		return pkgErrors.NewBadRequest(10002, "entries are required")
	case errors.Is(err, assistant.ErrBatchTooLarge):
		return pkgErrors.NewUnprocessable(10003, "batch exceeds the maximum of 100 entries")
	case errors.Is(err, assistant.ErrEntryNotFound):
		return pkgErrors.NewNotFound(10004, "entry not found")
	case errors.Is(err, assistant.ErrVectorDimension):
		return pkgErrors.NewInternal(10005, "knowledge base vectors are inconsistent")
	default:
		return pkgErrors.NewInternal(10000, "internal server error")
	}
}
