package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"user-access-management/go-backend/pkg/helpers"
	"user-access-management/go-backend/pkg/response"
)

const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the Authorization bearer token and injects the subject's
// user id and email into the Gin context. Token verification is stateless;
// the issuer only signs, this middleware is the verifying counterpart.
func Auth(jwt *helpers.JWTIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.Subject)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
