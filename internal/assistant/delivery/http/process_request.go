package http

import (
	"github.com/gin-gonic/gin"
)

// processResolveReq binds and validates the resolve request body.
func (h *handler) processResolveReq(c *gin.Context) (resolveReq, error) {
	var req resolveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTrainReq binds the training batch. Entry-level fields are validated
// by the use case so a bad entry fails individually, not the whole request.
func (h *handler) processTrainReq(c *gin.Context) (trainReq, error) {
	var req trainReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListEntriesReq binds the list query parameters.
func (h *handler) processListEntriesReq(c *gin.Context) (listEntriesReq, error) {
	var req listEntriesReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
