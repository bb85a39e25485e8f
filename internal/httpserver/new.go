package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"retail-analytics/internal/assistant"
	"retail-analytics/internal/dispatch"
	pkgLog "retail-analytics/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	// Assistant domain
	assistantUC assistant.UseCase
	dispatcher  *dispatch.Registry
	internalKey string
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	AssistantUC assistant.UseCase
	Dispatcher  *dispatch.Registry
	InternalKey string
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		assistantUC: cfg.AssistantUC,
		dispatcher:  cfg.Dispatcher,
		internalKey: cfg.InternalKey,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantUC == nil {
		return errors.New("assistant usecase is required")
	}
	if srv.dispatcher == nil {
		return errors.New("dispatch registry is required")
	}
	return nil
}
