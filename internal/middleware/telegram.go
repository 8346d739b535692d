package middleware

import (
	"crypto/hmac"

	"github.com/gin-gonic/gin"

	"university-assistant/pkg/response"
	"university-assistant/pkg/telegram"
)

// TelegramSecret rejects webhook calls that do not carry the secret token registered with Telegram.
// It is a no-op when no secret is configured.
func (m Middleware) TelegramSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.telegramSecret == "" {
			c.Next()
			return
		}

		got := c.GetHeader(telegram.SecretTokenHeader)
		if !hmac.Equal([]byte(got), []byte(m.telegramSecret)) {
			m.l.Warnf(c.Request.Context(), "internal.middleware.TelegramSecret: rejected request from %s", c.ClientIP())
			response.Unauthorized(c)
			return
		}
		c.Next()
	}
}
