package middleware

import (
	"net/http"
	"strings"

	"salonkit/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the identity middleware.
const (
	CtxUserID    = "userID"
	CtxCanManage = "canManage"
)

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

// OptionalIdentity attaches the caller's identity when a valid bearer
// token is present. Anonymous requests pass through untouched; an invalid
// token is treated as anonymous rather than rejected, since availability
// reads are public.
func OptionalIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := bearerToken(c); token != "" {
			if userID, manage, err := utils.ParseIdentity(token); err == nil {
				c.Set(CtxUserID, userID)
				c.Set(CtxCanManage, manage)
			}
		}
		c.Next()
	}
}

// RequireIdentity rejects requests without a valid bearer token.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		userID, manage, err := utils.ParseIdentity(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(CtxUserID, userID)
		c.Set(CtxCanManage, manage)
		c.Next()
	}
}

// RequireManage rejects callers without the manage-reservations capability.
// Must run after RequireIdentity.
func RequireManage() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(CtxCanManage) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient privileges"})
			return
		}
		c.Next()
	}
}
