package middleware

import (
	"go-leave/internal/domain"

	"github.com/gin-gonic/gin"
)

// Actor returns the authenticated caller. The role is empty when the request is anonymous.
func Actor(c *gin.Context) (string, domain.Role) {
	userID := c.GetString(ContextUserID)
	role, err := domain.ParseRole(c.GetString(ContextRole))
	if err != nil {
		return userID, ""
	}
	return userID, role
}
