package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// RequireSession is the single guard shared by every protected route.
// Requests without a valid session cookie are redirected to the login
// page and never reach the handler.
func RequireSession(sessions *Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err == nil {
			if userID, perr := sessions.Parse(cookie); perr == nil {
				c.Set(userIDKey, userID)
				c.Next()
				return
			}
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

// SessionUserID returns the authenticated user id set by RequireSession.
func SessionUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
