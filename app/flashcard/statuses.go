package flashcard

import (
	"net/http"

	"linguaai/flashcards-api/internal/model"

	"github.com/gin-gonic/gin"
)

func FlashcardStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, model.Statuses)
}
