package http

import (
	"github.com/gin-gonic/gin"

	"retail-analytics/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Resolve is the
// public entry point; training and knowledge-base administration require the
// internal key.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/resolve", h.Resolve)
	rg.GET("/templates", h.ListTemplates)

	admin := rg.Group("")
	admin.Use(mw.InternalAuth())
	{
		admin.POST("/train", h.Train)
		admin.GET("/faq", h.ListEntries)
		admin.DELETE("/faq/:id", h.DeleteEntry)
		admin.DELETE("/faq", h.ClearAll)
	}
}
