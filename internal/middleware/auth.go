package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/emilythestrangee/videotube/backend/internal/apperror"
)

// UserIDKey is the gin context key holding the authenticated user's id.
const UserIDKey = "user_id"

// TokenCookie is read when no Authorization header is sent.
const TokenCookie = "accessToken"

// TokenVerifier resolves an access token to the id of the user it was issued to.
type TokenVerifier interface {
	Verify(raw string) (uuid.UUID, error)
}

// Auth rejects requests without a valid access token and stores the caller's
// id under UserIDKey.
func Auth(tokens TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := bearerToken(c)
		if err != nil {
			apperror.HandleError(c, err)
			c.Abort()
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			apperror.HandleError(c, apperror.Wrap(apperror.ErrUnauthorized, "invalid or expired token", err))
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, error) {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", apperror.New(apperror.ErrUnauthorized, "invalid authorization header format")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil && cookie != "" {
		return cookie, nil
	}
	return "", apperror.New(apperror.ErrUnauthorized, "authentication required")
}

// UserID returns the id stored by Auth.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}
