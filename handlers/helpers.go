package handlers

import (
	"strconv"

	"stylebook/utils"

	"github.com/gin-gonic/gin"
)

func jsonError(c *gin.Context, status int, message string) {
	utils.JSONError(c, status, message, "")
}

// callerIdentity returns the user ID and role the auth middleware set on
// the request context.
func callerIdentity(c *gin.Context) (string, string) {
	userID, _ := c.Get("userID")
	role, _ := c.Get("role")
	id, _ := userID.(string)
	r, _ := role.(string)
	return id, r
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
