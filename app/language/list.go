package language

import (
	"net/http"

	"linguaai/flashcards-api/internal"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func LanguageList(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	langs, err := d.Repo.Languages.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list languages", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, langs)
}
