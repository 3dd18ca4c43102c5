package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat pings the database so a dead store shows up as unhealthy
func Heartbeat(ping func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := ping(); err != nil {
			c.Status(http.StatusServiceUnavailable)
			return
		}

		c.Status(http.StatusOK)
	}
}
