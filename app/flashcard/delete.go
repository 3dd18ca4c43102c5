package flashcard

import (
	"errors"
	"net/http"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func FlashcardDelete(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	user := middleware.CurrentUser(c)

	id, ok := cardID(c, requestID)
	if !ok {
		return
	}

	err := d.Repo.Flashcards.Delete(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Flashcard not found. It either doesn't exist or you don't own it",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete flashcard", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
