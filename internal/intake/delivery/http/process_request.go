package http

import (
	"github.com/gin-gonic/gin"
)

// processChatReq binds the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.intake.delivery.http.processChatReq: %v", err)
		return req, errInvalidChatReq
	}
	return req, nil
}
