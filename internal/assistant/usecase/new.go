package usecase

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/assistant/repository"
	"retail-analytics/internal/intent"
	"retail-analytics/internal/matcher"
	pkgLog "retail-analytics/pkg/log"
	"retail-analytics/pkg/llmprovider"
	"retail-analytics/pkg/voyage"
)

// Completer is the chat-completion dependency of the resolution pipeline,
// satisfied by *llmprovider.Manager.
type Completer interface {
	Complete(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Config tunes the resolution and training behavior.
type Config struct {
	FAQThreshold   float64       // Minimum cosine similarity for a FAQ hit
	TrainBatchSize int           // Entries processed concurrently per chunk
	TrainBatchCap  int           // Hard cap on one training request
	TrainPacing    time.Duration // Delay enforced between chunks
	EmbedCacheSize int           // LRU capacity for question embeddings
}

func (c *Config) applyDefaults() {
	if c.FAQThreshold <= 0 {
		c.FAQThreshold = DefaultFAQThreshold
	}
	if c.TrainBatchSize <= 0 {
		c.TrainBatchSize = DefaultTrainBatchSize
	}
	if c.TrainBatchCap <= 0 {
		c.TrainBatchCap = DefaultTrainBatchCap
	}
	if c.TrainPacing <= 0 {
		c.TrainPacing = DefaultTrainPacing
	}
	if c.EmbedCacheSize <= 0 {
		c.EmbedCacheSize = DefaultEmbedCacheSize
	}
}

type implUseCase struct {
	l        pkgLog.Logger
	cfg      Config
	repo     repository.FAQRepository
	embedder voyage.IVoyage
	llm      Completer
	detector intent.Detector
	matcher  *matcher.Matcher

	embedCache   *lru.Cache[string, []float32]
	trainLimiter *rate.Limiter
}

var _ assistant.UseCase = (*implUseCase)(nil)

// New creates a new assistant UseCase instance.
func New(
	l pkgLog.Logger,
	cfg Config,
	repo repository.FAQRepository,
	embedder voyage.IVoyage,
	llm Completer,
	detector intent.Detector,
	m *matcher.Matcher,
) *implUseCase {
	cfg.applyDefaults()

	cache, _ := lru.New[string, []float32](cfg.EmbedCacheSize)

	return &implUseCase{
		l:            l,
		cfg:          cfg,
		repo:         repo,
		embedder:     embedder,
		llm:          llm,
		detector:     detector,
		matcher:      m,
		embedCache:   cache,
		trainLimiter: rate.NewLimiter(rate.Every(cfg.TrainPacing), 1),
	}
}
