package main

import (
	"context"
	"fmt"
	"os"

	"retail-analytics/config"
	"retail-analytics/internal/assistant/repository"
	qdrantRepo "retail-analytics/internal/assistant/repository/qdrant"
	"retail-analytics/pkg/log"
	pkgQdrant "retail-analytics/pkg/qdrant"
	"retail-analytics/pkg/voyage"
)

// Re-embeds every stored FAQ entry with the currently configured embedding
// model. Run this after changing voyage.model so stored vectors stay
// compatible with query vectors.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run scripts/reembed-faq/main.go <path/to/config.yaml>")
		fmt.Println("Example: go run scripts/reembed-faq/main.go config/config.yaml")
		os.Exit(1)
	}
	configPath := os.Args[1]

	// Load config
	os.Setenv("CONFIG_PATH", configPath)
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	embeddingClient, err := voyage.New(cfg.Voyage.APIKey)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize Voyage API: %v", err)
	}
	if cfg.Voyage.Model != "" {
		embeddingClient = embeddingClient.WithModel(cfg.Voyage.Model)
	}
	faqRepo := qdrantRepo.New(logger, qdrantClient, embeddingClient, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize)

	logger.Info(ctx, "Starting re-embed process...")

	entries, total, err := faqRepo.List(ctx, repository.ListOptions{Limit: 10000})
	if err != nil {
		logger.Fatalf(ctx, "Failed to list entries: %v", err)
	}

	logger.Infof(ctx, "Found %d entries to re-embed", total)

	successCount := 0
	for i, entry := range entries {
		_, err := faqRepo.Upsert(ctx, repository.UpsertOptions{
			Question: entry.Question,
			Answer:   entry.Answer,
		})
		if err != nil {
			logger.Errorf(ctx, "Failed to re-embed entry %s: %v", entry.ID, err)
			continue
		}
		logger.Infof(ctx, "Re-embedded entry %d/%d: %s", i+1, len(entries), entry.ID)
		successCount++
	}

	logger.Infof(ctx, "Re-embed complete! %d/%d entries successfully updated.", successCount, len(entries))
}
