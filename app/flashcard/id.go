// Package flashcard contains the handlers for a user's flashcards. Every
// store call passes the resolved user's id so only owned cards are touched
package flashcard

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// cardID parses the :id path parameter, answering 400 itself when it's bad
func cardID(c *gin.Context, requestID string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid flashcard ID",
			"requestID": requestID,
		})
		return 0, false
	}

	return uint(id), true
}
