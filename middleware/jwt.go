package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/aartibhkm/admin2/config"
	"github.com/aartibhkm/admin2/internal/error/code"
	"github.com/aartibhkm/admin2/internal/error/response"
	"github.com/aartibhkm/admin2/services"
)

// TokenHeader is the designated header the console sends the bearer token in
const TokenHeader = "x-auth-token"

// Context keys the gate attaches the decoded identity under
const (
	ContextAdminID  = "adminID"
	ContextUsername = "username"
	ContextRole     = "role"
)

var jwtService services.InterfaceJWTService

// InitAuthMiddleware initializes the authentication middleware
func InitAuthMiddleware(cfg *config.Config) {
	jwtService = services.NewJWTService(cfg)
}

// extractToken reads the token from the designated header, tolerating a
// "Bearer " prefix
func extractToken(c *gin.Context) string {
	token := c.GetHeader(TokenHeader)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(token, "Bearer ") {
		return token[7:]
	}
	return token
}

// Authentication gates every protected route. It verifies signature and
// expiry against the process-wide secret and attaches the decoded identity
// to the request context. No database lookup happens here: identity is
// trusted from the token payload alone, so deactivating an account does not
// revoke tokens already issued.
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			response.Fail(c, code.ErrTokenMissing, nil)
			c.Abort()
			return
		}

		claims, err := jwtService.ExtractClaims(tokenString)
		if err != nil {
			response.Fail(c, code.ErrTokenInvalid, nil)
			c.Abort()
			return
		}

		c.Set(ContextAdminID, claims.AdminID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}
