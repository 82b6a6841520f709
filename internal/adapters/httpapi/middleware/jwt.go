package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UserIDKey کلید شناسه کاربر احرازشده در gin.Context
const UserIDKey = "userID"

// TokenVerifier توکن را بررسی کرده و شناسه کاربر را برمی‌گرداند
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// JWTAuthMiddleware توکن Bearer را اعتبارسنجی و userID را در context قرار می‌دهد
func JWTAuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token is required"})
			return
		}

		userID, err := verifier.VerifyToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}
