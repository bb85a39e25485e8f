package assistant

import (
	"context"

	"retail-analytics/internal/model"
)

// UseCase defines the business logic interface for the assistant domain.
type UseCase interface {
	// Resolve routes one user question through the tiered resolution pipeline
	// and returns exactly one outcome. Upstream service failures degrade to
	// later tiers; only input errors and embedding-dimension violations are
	// returned.
	Resolve(ctx context.Context, input ResolveInput) (model.ResolutionOutcome, error)

	// TrainBatch upserts a batch of (question, answer) pairs into the
	// knowledge base. Per-entry failures are recorded in the output rather
	// than aborting the batch.
	TrainBatch(ctx context.Context, input TrainInput) (TrainOutput, error)

	// DeleteEntry removes one trained entry by ID. Returns ErrEntryNotFound
	// when no such entry exists.
	DeleteEntry(ctx context.Context, id string) error

	// ClearAll removes every trained entry and returns how many were removed.
	ClearAll(ctx context.Context) (int, error)

	// ListEntries returns a page of trained entries.
	ListEntries(ctx context.Context, input ListInput) (ListOutput, error)

	// ListTemplates returns the capability templates in registration order.
	ListTemplates(ctx context.Context) []model.Template
}
