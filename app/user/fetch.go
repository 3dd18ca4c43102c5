package user

import (
	"net/http"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/model"
	"linguaai/flashcards-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserMe returns the user resolved from the request's token
func UserMe(c *gin.Context) {
	c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

// UserMeFlashcards returns the current user with every card they own nested
func UserMeFlashcards(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)
	me := middleware.CurrentUser(c)

	user, err := d.Repo.Users.WithFlashcards(c.Request.Context(), me.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch user flashcards", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	cards := user.Flashcards
	if cards == nil {
		cards = []model.Flashcard{}
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"full_name":  user.FullName,
		"email":      user.Email,
		"flashcards": cards,
	})
}

func UserList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	users, err := d.Repo.Users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list users", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, users)
}
