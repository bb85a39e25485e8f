package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"retail-analytics/internal/assistant"
	assistantHTTP "retail-analytics/internal/assistant/delivery/http"
	"retail-analytics/internal/dispatch"
	"retail-analytics/internal/middleware"
	"retail-analytics/internal/model"
	pkgLog "retail-analytics/pkg/log"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Info(ctx context.Context, arg ...any)                     {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Error(ctx context.Context, arg ...any)                    {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var _ pkgLog.Logger = testLogger{}

type mockUseCase struct {
	resolveFunc   func(ctx context.Context, input assistant.ResolveInput) (model.ResolutionOutcome, error)
	trainFunc     func(ctx context.Context, input assistant.TrainInput) (assistant.TrainOutput, error)
	deleteFunc    func(ctx context.Context, id string) error
	clearFunc     func(ctx context.Context) (int, error)
	listFunc      func(ctx context.Context, input assistant.ListInput) (assistant.ListOutput, error)
	templatesFunc func(ctx context.Context) []model.Template
}

func (m *mockUseCase) Resolve(ctx context.Context, input assistant.ResolveInput) (model.ResolutionOutcome, error) {
	return m.resolveFunc(ctx, input)
}

func (m *mockUseCase) TrainBatch(ctx context.Context, input assistant.TrainInput) (assistant.TrainOutput, error) {
	return m.trainFunc(ctx, input)
}

func (m *mockUseCase) DeleteEntry(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockUseCase) ClearAll(ctx context.Context) (int, error) {
	return m.clearFunc(ctx)
}

func (m *mockUseCase) ListEntries(ctx context.Context, input assistant.ListInput) (assistant.ListOutput, error) {
	return m.listFunc(ctx, input)
}

func (m *mockUseCase) ListTemplates(ctx context.Context) []model.Template {
	return m.templatesFunc(ctx)
}

func newTestDispatcher(t *testing.T) *dispatch.Registry {
	t.Helper()

	executors := make(map[model.ActionID]dispatch.Executor)
	for _, action := range model.AllActions() {
		executors[action] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
			return json.RawMessage(`{"ok":true}`), nil
		})
	}

	registry, err := dispatch.NewRegistry(executors)
	if err != nil {
		t.Fatalf("build dispatch registry: %v", err)
	}
	return registry
}

func newTestRouter(t *testing.T, uc assistant.UseCase, internalKey string) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	h := assistantHTTP.New(testLogger{}, uc, newTestDispatcher(t))
	mw := middleware.New(testLogger{}, internalKey)
	assistantHTTP.RegisterRoutes(engine.Group("/api/v1/assistant"), h, mw)

	return engine
}

func TestResolveEndpoint(t *testing.T) {
	t.Run("FAQ Hit Returns Answer And Matches", func(t *testing.T) {
		uc := &mockUseCase{
			resolveFunc: func(ctx context.Context, input assistant.ResolveInput) (model.ResolutionOutcome, error) {
				return model.ResolutionOutcome{
					Kind: model.OutcomeFAQHit,
					FAQHit: &model.FAQHit{
						Entry:           model.FAQEntry{Question: "store hours", Answer: "9 to 5"},
						Similarity:      0.91,
						RewrittenAnswer: "We are open from 9 to 5.",
						TopMatches: []model.RankedMatch{
							{Entry: model.FAQEntry{Question: "store hours"}, Similarity: 0.91},
						},
					},
				}, nil
			},
		}
		router := newTestRouter(t, uc, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/resolve",
			strings.NewReader(`{"question": "when are you open?"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		var body struct {
			Data struct {
				Kind       string  `json:"kind"`
				Answer     string  `json:"answer"`
				Similarity float64 `json:"similarity"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body.Data.Kind != "faq_hit" {
			t.Errorf("kind = %q", body.Data.Kind)
		}
		if body.Data.Answer != "We are open from 9 to 5." {
			t.Errorf("answer = %q, rewritten answer should win", body.Data.Answer)
		}
		if body.Data.Similarity != 0.91 {
			t.Errorf("similarity = %v", body.Data.Similarity)
		}
	})

	t.Run("Tool Dispatch Includes Executed Data", func(t *testing.T) {
		uc := &mockUseCase{
			resolveFunc: func(ctx context.Context, input assistant.ResolveInput) (model.ResolutionOutcome, error) {
				return model.ResolutionOutcome{
					Kind: model.OutcomeToolDispatch,
					ToolDispatch: &model.ToolDispatch{
						Intent: model.Intent{Action: model.ActionTopProducts, Params: map[string]any{"limit": 5}, Confidence: 0.9},
					},
				}, nil
			},
		}
		router := newTestRouter(t, uc, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/resolve",
			strings.NewReader(`{"question": "top 5 products"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"data":{"ok":true}`) {
			t.Errorf("executed action data missing from body: %s", w.Body.String())
		}
	})

	t.Run("Empty Question Returns 400", func(t *testing.T) {
		uc := &mockUseCase{
			resolveFunc: func(ctx context.Context, input assistant.ResolveInput) (model.ResolutionOutcome, error) {
				return model.ResolutionOutcome{}, assistant.ErrEmptyQuestion
			},
		}
		router := newTestRouter(t, uc, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/resolve",
			strings.NewReader(`{"question": "x"}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("Missing Body Field Returns 400", func(t *testing.T) {
		uc := &mockUseCase{}
		router := newTestRouter(t, uc, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/resolve", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestAdminAuth(t *testing.T) {
	uc := &mockUseCase{
		trainFunc: func(ctx context.Context, input assistant.TrainInput) (assistant.TrainOutput, error) {
			return assistant.TrainOutput{Created: len(input.Entries)}, nil
		},
	}

	t.Run("Missing Key Rejected", func(t *testing.T) {
		router := newTestRouter(t, uc, "secret")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/train",
			strings.NewReader(`{"entries": [{"question": "q", "answer": "a"}]}`))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("Wrong Key Rejected", func(t *testing.T) {
		router := newTestRouter(t, uc, "secret")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/train",
			strings.NewReader(`{"entries": [{"question": "q", "answer": "a"}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Key", "guess")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("No Key Configured Disables Admin Routes", func(t *testing.T) {
		router := newTestRouter(t, uc, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/train",
			strings.NewReader(`{"entries": [{"question": "q", "answer": "a"}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Key", "")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", w.Code)
		}
	})

	t.Run("Valid Key Trains", func(t *testing.T) {
		router := newTestRouter(t, uc, "secret")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assistant/train",
			strings.NewReader(`{"entries": [{"question": "q", "answer": "a"}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Internal-Key", "secret")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Body.String(), `"created":1`) {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}
