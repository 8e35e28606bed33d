package middleware

import (
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/utils"
)

// Session keys shared with the auth controllers.
const (
	SessionKeyUser         = "admin_user"
	SessionKeyLastActivity = "last_activity"
)

// SessionMaxAge is the sliding expiry window for admin sessions.
const SessionMaxAge = 24 * time.Hour

// AdminSessionMiddleware gates the admin routes. A request passes only when
// the session carries an admin identity whose last activity falls inside the
// sliding window; passing refreshes the activity stamp.
func AdminSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		user, ok := session.Get(SessionKeyUser).(string)
		if !ok || user == "" {
			utils.LogDebug("Admin access denied - no session on %s", c.Request.URL.Path)
			utils.Unauthorized(c, "Please login for access")
			c.Abort()
			return
		}

		lastActivity, ok := session.Get(SessionKeyLastActivity).(int64)
		if !ok || time.Since(time.Unix(lastActivity, 0)) > SessionMaxAge {
			utils.LogInfo("Admin session expired for %s", user)
			session.Clear()
			if err := session.Save(); err != nil {
				utils.LogError("Failed to clear expired session: %v", err)
			}
			utils.Unauthorized(c, "Session expired, please login again")
			c.Abort()
			return
		}

		// Sliding expiry: each authenticated request restamps the session.
		session.Set(SessionKeyLastActivity, time.Now().Unix())
		if err := session.Save(); err != nil {
			utils.LogError("Failed to refresh session for %s: %v", user, err)
		}

		c.Set("admin_user", user)
		c.Next()
	}
}
