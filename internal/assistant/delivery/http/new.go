package http

import (
	"retail-analytics/internal/assistant"
	"retail-analytics/internal/dispatch"
	pkgLog "retail-analytics/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	Resolve(c interface{})
	Train(c interface{})
	ListEntries(c interface{})
	DeleteEntry(c interface{})
	ClearAll(c interface{})
	ListTemplates(c interface{})
}

type handler struct {
	l          pkgLog.Logger
	uc         assistant.UseCase
	dispatcher *dispatch.Registry
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc assistant.UseCase, dispatcher *dispatch.Registry) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		dispatcher: dispatcher,
	}
}
