package dispatch_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"retail-analytics/internal/dispatch"
	"retail-analytics/internal/model"
)

func fullExecutorMap() map[model.ActionID]dispatch.Executor {
	executors := make(map[model.ActionID]dispatch.Executor)
	for _, action := range model.AllActions() {
		executors[action] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
			return json.RawMessage(`{}`), nil
		})
	}
	return executors
}

func TestNewRegistry(t *testing.T) {
	t.Run("All Actions Wired", func(t *testing.T) {
		registry, err := dispatch.NewRegistry(fullExecutorMap())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if registry == nil {
			t.Fatal("expected registry")
		}
	})

	t.Run("Missing Executor Rejected", func(t *testing.T) {
		executors := fullExecutorMap()
		delete(executors, model.ActionSalesReport)

		_, err := dispatch.NewRegistry(executors)
		if err == nil {
			t.Fatal("expected error for missing executor")
		}
		if !strings.Contains(err.Error(), string(model.ActionSalesReport)) {
			t.Errorf("error should name the missing action, got %v", err)
		}
	})

	t.Run("Unknown Action Rejected", func(t *testing.T) {
		executors := fullExecutorMap()
		executors[model.ActionID("launchRocket")] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
			return nil, nil
		})

		_, err := dispatch.NewRegistry(executors)
		if err == nil {
			t.Fatal("expected error for unknown action")
		}
		if !strings.Contains(err.Error(), "launchRocket") {
			t.Errorf("error should name the unknown action, got %v", err)
		}
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("Routes To Wired Executor", func(t *testing.T) {
		var gotParams map[string]any

		executors := fullExecutorMap()
		executors[model.ActionTopProducts] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
			gotParams = params
			return json.RawMessage(`{"products": []}`), nil
		})

		registry, err := dispatch.NewRegistry(executors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		data, err := registry.Execute(ctx, &model.Intent{
			Action: model.ActionTopProducts,
			Params: map[string]any{"limit": 5},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"products": []}` {
			t.Errorf("data = %s", data)
		}
		if gotParams["limit"] != 5 {
			t.Errorf("params = %v", gotParams)
		}
	})

	t.Run("Nil Params Become Empty Map", func(t *testing.T) {
		var gotParams map[string]any

		executors := fullExecutorMap()
		executors[model.ActionProductCount] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
			gotParams = params
			return nil, nil
		})

		registry, err := dispatch.NewRegistry(executors)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := registry.Execute(ctx, &model.Intent{Action: model.ActionProductCount}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotParams == nil {
			t.Error("executor should receive a non-nil params map")
		}
	})
}
