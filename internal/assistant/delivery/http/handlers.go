package http

import (
	"github.com/gin-gonic/gin"

	"retail-analytics/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a user question
// @Description Routes a question through the tiered resolution pipeline and returns one outcome. Tool and template outcomes include the executed action's data when the downstream call succeeds.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Question"
// @Success     200 {object} resolveResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	outcome, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Resolve: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newResolveResp(ctx, outcome))
}

// Train godoc
// @Summary     Train the knowledge base
// @Description Upserts a batch of question/answer pairs. Per-entry failures are reported in the result without failing the batch.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body trainReq true "Batch of entries (max 100)"
// @Success     200 {object} trainResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     422 {object} response.Resp "Batch too large"
// @Router      /api/v1/assistant/train [POST]
func (h *handler) Train(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrainReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.TrainBatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.TrainBatch: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTrainResp(output))
}

// ListEntries godoc
// @Summary     List trained entries
// @Description Returns a paginated list of knowledge-base entries.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       limit  query int false "Page size (default: 50)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listEntriesResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/faq [GET]
func (h *handler) ListEntries(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEntriesReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListEntries(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListEntries: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListEntriesResp(output, req))
}

// DeleteEntry godoc
// @Summary     Delete one trained entry
// @Description Removes a knowledge-base entry by ID.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id path string true "Entry ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/assistant/faq/{id} [DELETE]
func (h *handler) DeleteEntry(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if err := h.uc.DeleteEntry(ctx, id); err != nil {
		h.l.Warnf(ctx, "uc.DeleteEntry: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// ClearAll godoc
// @Summary     Clear the knowledge base
// @Description Removes every trained entry and reports how many were removed.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Success     200 {object} clearResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/faq [DELETE]
func (h *handler) ClearAll(c *gin.Context) {
	ctx := c.Request.Context()

	removed, err := h.uc.ClearAll(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ClearAll: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, clearResp{Removed: removed})
}

// ListTemplates godoc
// @Summary     List capability templates
// @Description Returns the registered trigger-phrase templates in registration order.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Success     200 {object} listTemplatesResp
// @Router      /api/v1/assistant/templates [GET]
func (h *handler) ListTemplates(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, newListTemplatesResp(h.uc.ListTemplates(ctx)))
}
