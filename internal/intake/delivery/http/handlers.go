package http

import (
	"github.com/gin-gonic/gin"

	"university-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message
// @Description Runs one intake dialogue turn. Omit session_id to start a new conversation.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.intake.delivery.http.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(output))
}

// Detail godoc
// @Summary     Get session detail
// @Description Returns the collected slots and submission status of one conversation.
// @Tags        Intake
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sessions/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "internal.intake.delivery.http.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSessionResp(output))
}
