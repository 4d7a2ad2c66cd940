package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookstore/internal/apperrors"
)

// ContextKeyUserID holds the authenticated user's id in the gin context.
const ContextKeyUserID = "auth_user_id"

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	VerifyToken(raw string) (uint, error)
}

// Middleware gates routes behind a bearer token.
type Middleware struct {
	verifier TokenVerifier
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(verifier TokenVerifier) *Middleware {
	return &Middleware{verifier: verifier}
}

// RequireToken rejects requests without a valid bearer token with 401 and
// stores the user id for the handlers that follow.
func (m *Middleware) RequireToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, ErrAuthRequired)
			return
		}

		userID, err := m.verifier.VerifyToken(raw)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Next()
	}
}

// bearerToken extracts the token from "Bearer <token>".
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, TokenType) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, err error) {
	message := ErrInvalidToken.Message
	if appErr, ok := apperrors.As(err); ok && appErr.Code == apperrors.CodeUnauthorized {
		message = appErr.Message
	}
	_ = c.Error(err)
	c.Header("WWW-Authenticate", TokenType)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"message": message,
		"code":    apperrors.CodeUnauthorized,
	})
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 on routes that are not behind RequireToken.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}
