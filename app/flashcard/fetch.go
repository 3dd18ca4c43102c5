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

// FlashcardFetch returns a card by its ID if the user owns it
func FlashcardFetch(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	user := middleware.CurrentUser(c)

	id, ok := cardID(c, requestID)
	if !ok {
		return
	}

	card, err := d.Repo.Flashcards.Get(c.Request.Context(), user.ID, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Flashcard not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch flashcard from db", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, card)
}
