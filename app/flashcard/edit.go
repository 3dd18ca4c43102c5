package flashcard

import (
	"errors"
	"net/http"
	"strings"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/internal/repository"
	"linguaai/flashcards-api/pkg/middleware"
	"linguaai/flashcards-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// All three fields are required, there is no partial update
type editBody struct {
	Question *string                `json:"question"`
	Answer   *string                `json:"answer"`
	Status   *model.FlashcardStatus `json:"status"`
}

func FlashcardEdit(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	user := middleware.CurrentUser(c)

	id, ok := cardID(c, requestID)
	if !ok {
		return
	}

	var data editBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Question == nil || data.Answer == nil || data.Status == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "question, answer and status are all required",
			"requestID": requestID,
		})
		return
	}

	question := strings.TrimSpace(*data.Question)
	answer := strings.TrimSpace(*data.Answer)

	if err := validators.CardTextValidator(question, answer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if !data.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid status. Use one of new, inprogress or done",
			"requestID": requestID,
		})
		return
	}

	card, err := d.Repo.Flashcards.Update(c.Request.Context(), user.ID, id, repository.FlashcardChanges{
		Question: question,
		Answer:   answer,
		Status:   *data.Status,
	})
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

		zap.L().Error("Failed to update flashcard entry", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, card)
}
