package root

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Validate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"valid":  true,
		"userID": c.GetString("userID"),
	})
}
