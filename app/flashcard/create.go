package flashcard

import (
	"errors"
	"net/http"
	"strings"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/internal/repository"
	"linguaai/flashcards-api/pkg/middleware"
	"linguaai/flashcards-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Question     string  `json:"question"`
	Answer       string  `json:"answer"`
	Topic        *string `json:"topic"`
	LanguageCode string  `json:"language_code"`
}

func FlashcardCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	user := middleware.CurrentUser(c)

	var data createBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	data.Question = strings.TrimSpace(data.Question)
	data.Answer = strings.TrimSpace(data.Answer)

	if err := validators.CardTextValidator(data.Question, data.Answer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if err := validators.LanguageCodeValidator(data.LanguageCode); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.Topic != nil {
		if t := strings.TrimSpace(*data.Topic); t == "" {
			data.Topic = nil
		} else {
			data.Topic = &t
		}
	}

	card, err := d.Repo.Flashcards.Create(c.Request.Context(), user.ID, repository.NewFlashcard{
		Question:     data.Question,
		Answer:       data.Answer,
		Topic:        data.Topic,
		LanguageCode: data.LanguageCode,
	})
	if err != nil {
		if errors.Is(err, errs.ErrLanguageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Language not found. Register the language code first",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create flashcard", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, card)
}
