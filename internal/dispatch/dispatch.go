// Package dispatch maps detected intents onto concrete action executors.
// The registry is validated at startup so an action added to the model
// without a wired executor fails fast instead of at request time.
package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"retail-analytics/internal/model"
)

// Executor performs one analytics action with already-extracted parameters.
// Implementations stay opaque to the resolution pipeline.
type Executor interface {
	Execute(ctx context.Context, params map[string]any) (json.RawMessage, error)
}

// ExecutorFunc adapts a function to the Executor interface.
type ExecutorFunc func(ctx context.Context, params map[string]any) (json.RawMessage, error)

func (f ExecutorFunc) Execute(ctx context.Context, params map[string]any) (json.RawMessage, error) {
	return f(ctx, params)
}

// Registry holds the executor wired to each action.
type Registry struct {
	executors map[model.ActionID]Executor
}

// NewRegistry validates that every known action has exactly one executor and
// no unknown actions sneak in.
func NewRegistry(executors map[model.ActionID]Executor) (*Registry, error) {
	for action := range executors {
		if !action.Valid() {
			return nil, fmt.Errorf("dispatch: executor registered for unknown action %q", action)
		}
	}
	for _, action := range model.AllActions() {
		if _, ok := executors[action]; !ok {
			return nil, fmt.Errorf("dispatch: no executor registered for action %q", action)
		}
	}

	copied := make(map[model.ActionID]Executor, len(executors))
	for action, exec := range executors {
		copied[action] = exec
	}
	return &Registry{executors: copied}, nil
}

// Execute runs the executor wired to the intent's action.
func (r *Registry) Execute(ctx context.Context, intent *model.Intent) (json.RawMessage, error) {
	exec, ok := r.executors[intent.Action]
	if !ok {
		return nil, fmt.Errorf("dispatch: no executor for action %q", intent.Action)
	}

	params := intent.Params
	if params == nil {
		params = map[string]any{}
	}
	return exec.Execute(ctx, params)
}
