package flashcard

import (
	"net/http"
	"strconv"
	"strings"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/repository"
	"linguaai/flashcards-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func FlashcardList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	user := middleware.CurrentUser(c)

	skip, err := strconv.Atoi(c.DefaultQuery("skip", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Skip is not a valid integer",
			"requestID": requestID,
		})
		return
	}

	if skip < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Skip can't be negative",
			"requestID": requestID,
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(repository.DefaultLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit is not a valid integer",
			"requestID": requestID,
		})
		return
	}

	if limit < repository.MinLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit must be bigger than 0",
			"requestID": requestID,
		})
		return
	}

	if limit > repository.MaxLimit {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit can't be bigger than 100",
			"requestID": requestID,
		})
		return
	}

	page, err := d.Repo.Flashcards.List(c.Request.Context(), user.ID, repository.ListOpts{
		Skip:   skip,
		Limit:  limit,
		Search: strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list flashcards", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, page)
}
