// Package chat exposes the chat intent router over HTTP
package chat

import (
	"errors"
	"net/http"
	"strings"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type messageBody struct {
	Message string `json:"message"`
}

func ChatSend(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	user := middleware.CurrentUser(c)

	var data messageBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})
		return
	}

	if strings.TrimSpace(data.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Message can't be empty",
			"requestID": requestID,
		})
		return
	}

	reply, err := d.Chat.Reply(c.Request.Context(), user.ID, data.Message)
	if err != nil {
		if errors.Is(err, errs.ErrGeneration) {
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})

			zap.L().Error("Text generation failed", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to answer chat message", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, reply)
}
