package llmprovider

import "errors"

var (
	// ErrNoProvidersConfigured indicates no enabled providers are available
	ErrNoProvidersConfigured = errors.New("no LLM providers configured")

	// ErrAllProvidersFailed indicates every provider in the fallback chain failed
	ErrAllProvidersFailed = errors.New("all LLM providers failed")

	// ErrUnknownProvider indicates an unrecognized provider name in config
	ErrUnknownProvider = errors.New("unknown LLM provider")
)
