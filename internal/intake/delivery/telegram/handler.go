package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"university-assistant/internal/intake"
	"university-assistant/internal/intake/heuristic"
	pkgResponse "university-assistant/pkg/response"
	pkgTelegram "university-assistant/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and runs the dialogue turn in a background goroutine.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "internal.intake.delivery.telegram.HandleWebhook: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (edited messages, channel posts, ...)
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	bgCtx := context.WithoutCancel(ctx)
	go func() {
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "internal.intake.delivery.telegram.HandleWebhook: processMessage failed: %v", err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage runs one dialogue turn for a chat and sends the reply back.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case cmdStart:
		text = heuristic.StartSentinel
	case cmdHelp:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHelp)
	}

	out, err := h.uc.Handle(ctx, intake.HandleInput{
		SessionID: sessionID(msg.Chat.ID),
		Message:   text,
	})
	if err != nil {
		return fmt.Errorf("uc.Handle: %w", err)
	}

	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply)
}

// sessionID maps a chat to a stable dialogue session.
func sessionID(chatID int64) string {
	return fmt.Sprintf("%s%d", sessionPrefix, chatID)
}
