package handlers

import (
	"medibook/services/scheduling"

	"github.com/gin-gonic/gin"
)

// callerFrom builds the scheduling caller identity from the claims the
// auth middleware stored on the context.
func callerFrom(c *gin.Context) scheduling.Caller {
	return scheduling.Caller{
		UserID: c.GetString("userID"),
		Role:   c.GetString("role"),
	}
}
