// Package language contains the handlers of the language registry
package language

import (
	"net/http"
	"strings"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/pkg/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createBody struct {
	Code string  `json:"code"`
	Name *string `json:"name"`
}

// LanguageCreate registers a language code. Registering an existing code
// returns the stored record instead of failing
func LanguageCreate(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data createBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Malformed or invalid JSON request body",
			"requestID": requestID,
		})

		zap.L().Debug("Failed to read JSON body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.LanguageCodeValidator(data.Code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.Name != nil {
		if n := strings.TrimSpace(*data.Name); n == "" {
			data.Name = nil
		} else {
			data.Name = &n
		}
	}

	lang, err := d.Repo.Languages.GetOrCreate(c.Request.Context(), data.Code, data.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to register language", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, lang)
}
