package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tsg-api/internal/app"
	"tsg-api/internal/i18n"
	"tsg-api/internal/transport/http/response"
)

const (
	ContextUserIDKey  = "user_id"
	ContextTokenIDKey = "token_id"
	ContextTokenKey   = "token"
)

// Auth gates protected routes. The HTTP status is 401 for every failure so a
// caller cannot probe which check rejected the token; the message still names
// the kind.
func Auth(tokens *app.TokenService, catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Message(c, http.StatusUnauthorized, catalog.T("token_not_found"))
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Message(c, http.StatusUnauthorized, catalog.T("token_not_found"))
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := tokens.Verify(c.Request.Context(), tokenString)
		if err != nil {
			response.Message(c, http.StatusUnauthorized, catalog.T(messageKey(err)))
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextTokenIDKey, claims.ID)
		c.Set(ContextTokenKey, tokenString)
		c.Next()
	}
}

func messageKey(err error) string {
	switch {
	case errors.Is(err, app.ErrTokenExpired):
		return "token_expired"
	case errors.Is(err, app.ErrTokenRevoked):
		return "token_revoked"
	case errors.Is(err, app.ErrTokenMalformed), errors.Is(err, app.ErrTokenSignatureInvalid):
		return "token_invalid"
	default:
		return "unauthenticated"
	}
}
