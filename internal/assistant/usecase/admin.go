package usecase

import (
	"context"
	"strings"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/assistant/repository"
	"retail-analytics/internal/model"
)

// DeleteEntry removes one trained entry by ID.
func (uc *implUseCase) DeleteEntry(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return assistant.ErrEntryNotFound
	}
	return uc.repo.Delete(ctx, id)
}

// ClearAll removes every trained entry.
func (uc *implUseCase) ClearAll(ctx context.Context) (int, error) {
	removed, err := uc.repo.DeleteAll(ctx)
	if err != nil {
		return 0, err
	}
	uc.embedCache.Purge()
	uc.l.Infof(ctx, "assistant.ClearAll: removed=%d", removed)
	return removed, nil
}

// ListEntries returns a page of trained entries.
func (uc *implUseCase) ListEntries(ctx context.Context, input assistant.ListInput) (assistant.ListOutput, error) {
	entries, total, err := uc.repo.List(ctx, repository.ListOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		return assistant.ListOutput{}, err
	}
	return assistant.ListOutput{Entries: entries, Total: total}, nil
}

// ListTemplates returns the capability templates in registration order.
func (uc *implUseCase) ListTemplates(ctx context.Context) []model.Template {
	return uc.matcher.Registry().Templates()
}
