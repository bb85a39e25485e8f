package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"retail-analytics/config"
	_ "retail-analytics/docs" // Swagger docs
	qdrantRepo "retail-analytics/internal/assistant/repository/qdrant"
	"retail-analytics/internal/assistant/usecase"
	"retail-analytics/internal/dispatch"
	"retail-analytics/internal/httpserver"
	"retail-analytics/internal/intent"
	"retail-analytics/internal/matcher"
	"retail-analytics/internal/model"
	"retail-analytics/pkg/analytics"
	"retail-analytics/pkg/llmprovider"
	"retail-analytics/pkg/log"
	"retail-analytics/pkg/qdrant"
	"retail-analytics/pkg/voyage"
)

// @title       Retail Analytics Assistant API
// @description Query resolution and knowledge retrieval for the retail analytics assistant: semantic FAQ, intent detection, template matching, and bulk training.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Retail Analytics Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Qdrant URL: %s", cfg.Qdrant.URL)

	// 3. Embedding client
	voyageClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize voyage client: ", err)
		return
	}
	if cfg.Voyage.Model != "" {
		voyageClient = voyageClient.WithModel(cfg.Voyage.Model)
	}

	// 4. Knowledge base repository
	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)
	faqRepo := qdrantRepo.New(logger, qdrantClient, voyageClient, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize)
	if err := faqRepo.EnsureCollection(ctx); err != nil {
		logger.Error(ctx, "Failed to ensure qdrant collection: ", err)
		return
	}

	// 5. LLM provider manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	llmManager := llmprovider.NewManager(providers, llmprovider.ManagerConfigFromLLMConfig(&cfg.LLM), logger)

	// 6. Resolution pipeline
	detector := intent.New(llmManager, logger)
	templateMatcher := matcher.New(matcher.NewRegistry(matcher.DefaultTemplates()), logger)

	trainPacing, err := time.ParseDuration(cfg.Assistant.TrainPacing)
	if err != nil {
		trainPacing = usecase.DefaultTrainPacing
	}

	assistantUC := usecase.New(
		logger,
		usecase.Config{
			FAQThreshold:   cfg.Assistant.FAQThreshold,
			TrainBatchSize: cfg.Assistant.TrainBatchSize,
			TrainBatchCap:  cfg.Assistant.TrainBatchCap,
			TrainPacing:    trainPacing,
			EmbedCacheSize: cfg.Assistant.EmbedCacheSize,
		},
		faqRepo,
		voyageClient,
		llmManager,
		detector,
		templateMatcher,
	)

	// 7. Action dispatch
	dispatcher, err := buildDispatcher(cfg)
	if err != nil {
		logger.Error(ctx, "Failed to build dispatch registry: ", err)
		return
	}

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AssistantUC: assistantUC,
		Dispatcher:  dispatcher,
		InternalKey: cfg.InternalKey,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// buildDispatcher wires every action to the internal analytics service. The
// capabilities action is answered locally; everything else is proxied.
func buildDispatcher(cfg *config.Config) (*dispatch.Registry, error) {
	client := analytics.NewClient(cfg.Analytics.BaseURL, cfg.Analytics.APIKey)

	executors := make(map[model.ActionID]dispatch.Executor, len(model.AllActions()))
	for _, action := range model.AllActions() {
		action := action
		executors[action] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
			return client.ExecuteAction(ctx, string(action), params)
		})
	}

	executors[model.ActionCapabilities] = dispatch.ExecutorFunc(func(ctx context.Context, params map[string]any) (json.RawMessage, error) {
		return json.Marshal(map[string]any{
			"capabilities": model.AllActions(),
			"description":  "Product forecasts, product and store analysis, top products, product counts, sales reports, dashboard summaries, and replenishment suggestions.",
		})
	})

	return dispatch.NewRegistry(executors)
}
