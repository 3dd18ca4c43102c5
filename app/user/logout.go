package user

import (
	"net/http"

	"linguaai/flashcards-api/internal"
	"linguaai/flashcards-api/pkg/middleware"

	"github.com/gin-gonic/gin"
)

// UserLogout only tells the browser to drop its cookies. Tokens stay valid
// until they expire, clients holding a bearer token just discard it
func UserLogout(c *gin.Context, d *internal.Deps) {
	sslEnabled := d.Config.Host.SSLEnabled

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AuthCookie, "", -1, "/", "", sslEnabled, true)
	c.SetCookie("logged_in", "", -1, "/", "", sslEnabled, false)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out",
	})
}
