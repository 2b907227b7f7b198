package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"finvest_backend/internal/auth"
	"finvest_backend/internal/logger"
	"finvest_backend/pkg/apperrors"
	"finvest_backend/pkg/contextkeys"
)

// AuthMiddleware guards a route group with bearer-token auth. A missing
// or malformed Authorization header answers 401; a token that fails
// verification (bad signature, expired) answers 403.
func AuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token verification failed",
				"error", err.Error(),
				"path", c.Request.URL.Path,
			)
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		c.Set(contextkeys.UserIDKey, claims.UserID)
		c.Set(contextkeys.EmailKey, claims.Email)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
