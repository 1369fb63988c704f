package middleware

import (
	"net/http"

	"groanzone/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

const (
	// SessionCookie is the cookie that carries the opaque session token.
	SessionCookie = "groanzone_session"
	// LoginPath is where unauthenticated clients are pointed.
	LoginPath = "/api/auth/login"

	// Context keys set for downstream handlers.
	UserIDKey       = "userID"
	SessionTokenKey = "sessionToken"
)

// SessionMiddleware is a Gin middleware that resolves the session cookie
// to a user id through the session store. Requests without a resolvable
// session are rejected with a machine-readable not-authenticated reason
// and the login location; there are no anonymous paths behind it.
func SessionMiddleware(sessions service.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		userID, err := sessions.Get(c.Request.Context(), token)
		if err != nil {
			// expired and unknown tokens get the same response as a
			// missing cookie
			abortUnauthenticated(c)
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(SessionTokenKey, token)
		c.Next()
	}
}

func abortUnauthenticated(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error": "not-authenticated",
		"login": LoginPath,
	})
	c.Abort()
}

// CurrentUserID returns the session user id set by SessionMiddleware,
// or "" when the request carried no valid session.
func CurrentUserID(c *gin.Context) string {
	userID, _ := c.Get(UserIDKey)
	if s, ok := userID.(string); ok {
		return s
	}
	return ""
}
