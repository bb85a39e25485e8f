package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	assistantHTTP "retail-analytics/internal/assistant/delivery/http"
	"retail-analytics/internal/middleware"
)

// setupAssistantDomain wires the assistant delivery handler and registers its
// routes under /api/v1/assistant.
func (srv HTTPServer) setupAssistantDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := assistantHTTP.New(srv.l, srv.assistantUC, srv.dispatcher)

	assistantHTTP.RegisterRoutes(api.Group("/assistant"), h, mw)

	srv.l.Infof(ctx, "Assistant domain registered")
	return nil
}
