package user

import (
	"errors"
	"net/http"
	"strings"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/internal/errs"
	"linguaai/flashcards-api/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginBody struct {
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// The same message for both failures so logins can't probe for names
const invalidCredentials = "Invalid full name or password"

func UserLogin(c *gin.Context, d *internal.Deps) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	data.FullName = strings.TrimSpace(data.FullName)

	if data.FullName == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Full name field can't be empty",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	user, err := d.Repo.Users.FindByFullName(c.Request.Context(), data.FullName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":     invalidCredentials,
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !d.Hasher.Verify(data.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":     invalidCredentials,
			"requestID": requestID,
		})
		return
	}

	authToken, expiresAt, err := d.Tokens.Issue(user.FullName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate JWT auth token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	maxAge := int(d.Tokens.TTL().Seconds())
	sslEnabled := d.Config.Host.SSLEnabled

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, authToken, maxAge, "/", "", sslEnabled, true)
	c.SetCookie("logged_in", "1", maxAge, "/", "", sslEnabled, false)
	c.JSON(http.StatusOK, gin.H{
		"access_token": authToken,
		"token_type":   "bearer",
		"expires_at":   expiresAt.UTC(),
	})
}
