package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/alshbh-com/elfahd-express-marketplace/internal/session"
)

const sessionIDKey = "sessionID"

// sessionMiddleware resolves the shopper session for cart routes. A valid
// cookie slides the session deadline; a missing or expired one gets a
// fresh session and a new cookie. Handlers read the ID via sessionID().
func sessionMiddleware(sessions *session.Manager) gin.HandlerFunc {
	maxAge := int(sessions.TTL().Seconds())
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || !sessions.Touch(id) {
			id = sessions.Start()
		}
		// Re-set on every request so the cookie lifetime slides with the
		// session deadline.
		c.SetCookie(sessionCookie, id, maxAge, "/", "", false, true)
		c.Set(sessionIDKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
