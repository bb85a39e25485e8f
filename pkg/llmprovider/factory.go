package llmprovider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"retail-analytics/config"
	"retail-analytics/pkg/deepseek"
	"retail-analytics/pkg/gemini"
)

// InitializeProviders creates Provider instances from config.LLMConfig.
// Returns providers sorted by priority (ascending) with disabled providers
// filtered out. Skips providers that fail to initialize instead of failing
// the entire service.
func InitializeProviders(cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.Slice(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			initErrors = append(initErrors,
				fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// ManagerConfigFromLLMConfig converts duration strings from config into a
// Manager Config, falling back to safe defaults on parse errors.
func ManagerConfigFromLLMConfig(cfg *config.LLMConfig) *Config {
	retryDelay, err := time.ParseDuration(cfg.RetryDelay)
	if err != nil {
		retryDelay = time.Second
	}
	maxTimeout, err := time.ParseDuration(cfg.MaxTotalTimeout)
	if err != nil {
		maxTimeout = 60 * time.Second
	}

	return &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTimeout,
	}
}

func createProvider(p config.ProviderConfig) (Provider, error) {
	switch strings.ToLower(p.Name) {
	case "gemini":
		client, err := gemini.New(gemini.Config{
			APIKey: p.APIKey,
			Model:  p.Model,
			APIURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewGeminiAdapter(client), nil

	case "deepseek":
		client, err := deepseek.New(deepseek.Config{
			APIKey:  p.APIKey,
			Model:   p.Model,
			BaseURL: p.BaseURL,
		})
		if err != nil {
			return nil, err
		}
		return NewDeepSeekAdapter(client), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, p.Name)
	}
}
